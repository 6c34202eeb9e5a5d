package main

import "strings"

// stringSlice collects a repeatable flag. Blank values are ignored.
type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(value string) error {
	if v := strings.TrimSpace(value); v != "" {
		*s = append(*s, v)
	}
	return nil
}
