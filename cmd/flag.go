package cmd

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*headerFlag)(nil)

// headerFlag represents a flag for setting HTTP headers sent to a remote
// schema endpoint. Any repeats will not override. They will append.
//
// format: a=1,b=2
//
type headerFlag struct {
	value   http.Header
	changed bool
}

func newHeaderFlag() *headerFlag { return &headerFlag{value: make(http.Header)} }

func (f *headerFlag) String() string {
	if len(f.value) == 0 {
		return ""
	}

	var pairs []string
	for k, vs := range f.value {
		for _, v := range vs {
			pairs = append(pairs, k+"="+v)
		}
	}
	return strings.Join(pairs, ",")
}

func (*headerFlag) Type() string { return "key=value" }

func (f *headerFlag) Set(val string) error {
	var ss []string
	switch strings.Count(val, "=") {
	case 0:
		return fmt.Errorf("%s must be formatted as key=value", val)
	case 1:
		ss = append(ss, strings.Trim(val, `"`))
	default:
		var err error
		ss, err = csv.NewReader(strings.NewReader(val)).Read()
		if err != nil {
			return err
		}
	}

	for _, pair := range ss {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			return fmt.Errorf("%s must be formatted as key=value", pair)
		}
		f.value.Add(strings.TrimSpace(kv[0]), strings.Trim(kv[1], `"`))
	}
	f.changed = true
	return nil
}

// merge returns config headers overlaid with the flag's. A header given on
// the command line replaces the configured values for that key.
//
func (f *headerFlag) merge(config map[string]string) http.Header {
	h := make(http.Header, len(config)+len(f.value))
	for k, v := range config {
		h.Set(k, v)
	}
	for k, vs := range f.value {
		h.Del(k)
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	return h
}
