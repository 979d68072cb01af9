package format

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Spec text is a comma separated pair list; a {...} block shields a pair
// whose value contains commas, e.g. cast:"{timelayout=2006-01-02, 15:04}".
const (
	pairTerminatorToken = iota
	pairBlockToken
)

var (
	pairTerminatorMatcher = parsly.NewToken(pairTerminatorToken, "pair", matcher.NewTerminator(',', true))
	pairBlockMatcher      = parsly.NewToken(pairBlockToken, "{ pair }", matcher.NewBlock('{', '}', '\\'))
)
