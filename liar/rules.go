package liar

import (
	"strings"

	"github.com/ratel-online/liars-pub/consts"
)

type RefillPolicy int

const (
	// RefillSelf redeals only the player whose hand ran out.
	RefillSelf RefillPolicy = iota
	// RefillEmpty redeals every active player holding no cards.
	RefillEmpty
	// RefillTable collects every hand and redeals the whole table.
	RefillTable
)

type ChallengeRule int

const (
	// ChallengeNext lets only the player seated after the declarer challenge.
	ChallengeNext ChallengeRule = iota
	// ChallengeAny lets any other active player challenge.
	ChallengeAny
)

var refillNames = map[RefillPolicy]string{
	RefillSelf:  "self",
	RefillEmpty: "empty",
	RefillTable: "table",
}

var challengeNames = map[ChallengeRule]string{
	ChallengeNext: "next",
	ChallengeAny:  "any",
}

func (p RefillPolicy) String() string {
	return refillNames[p]
}

func (r ChallengeRule) String() string {
	return challengeNames[r]
}

func ParseRefillPolicy(name string) (RefillPolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for policy, n := range refillNames {
		if n == name {
			return policy, nil
		}
	}
	return 0, consts.ErrorsRoomPropsInvalid
}

func ParseChallengeRule(name string) (ChallengeRule, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for rule, n := range challengeNames {
		if n == name {
			return rule, nil
		}
	}
	return 0, consts.ErrorsRoomPropsInvalid
}

type Rules struct {
	Refill    RefillPolicy
	Challenge ChallengeRule
}

var DefaultRules = Rules{
	Refill:    RefillSelf,
	Challenge: ChallengeNext,
}

func (r Rules) String() string {
	return "refill: " + r.Refill.String() + ", challenge: " + r.Challenge.String()
}
