package figure

import (
	"fmt"
	"strconv"
	"strings"
)

// List collects the value of a repeatable string flag, so labels
// containing spaces survive intact.
type List []string

func (l *List) String() string { return strings.Join(*l, " ") }

func (l *List) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// IntList collects the value of a repeatable integer flag.
type IntList []int

func (l *IntList) String() string {
	fields := make([]string, len(*l))
	for i, v := range *l {
		fields[i] = strconv.Itoa(v)
	}
	return strings.Join(fields, " ")
}

func (l *IntList) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("cannot parse %q as an integer", s)
	}
	*l = append(*l, v)
	return nil
}
