package utils

import "strings"

// StringEnum флаг, который можно указать несколько раз (--tutor A --tutor B)
type StringEnum []string

func (i *StringEnum) String() string {
	return strings.Join(*i, ",")
}

func (i *StringEnum) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// Type нужен pflag
func (i *StringEnum) Type() string {
	return "stringEnum"
}
