package formatter

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumpConfig renders deterministic dumps: map keys are sorted and
// pointer addresses are omitted so that two dumps of equal values match.
var dumpConfig = spew.ConfigState{
	Indent:                  "    ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	MaxDepth:                maxDepth,
}

// Dump returns a deep, type-annotated rendering of v including
// unexported fields and the targets of pointers.
func Dump(v interface{}) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = FormatErrorText
		}
	}()
	return strings.TrimSuffix(dumpConfig.Sdump(v), "\n")
}
