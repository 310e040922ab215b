package main

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		inputs     []string
		properties []string
		ok         bool
	}{
		{[]string{"a.log"}, []string{"Temp"}, true},
		{[]string{"a.log"}, []string{"Temp", "Press"}, true},
		{[]string{"a.log", "b.log"}, []string{"Temp"}, true},
		{[]string{"a.log", "b.log"}, []string{"Temp", "Press"}, false},
		{nil, []string{"Temp"}, false},
		{[]string{"a.log"}, nil, false},
	}
	for _, test := range tests {
		err := validate(test.inputs, test.properties)
		if test.ok != (err == nil) {
			t.Errorf("%v %v: unexpected error state %v\n",
				test.inputs, test.properties, err)
		}
	}
}
