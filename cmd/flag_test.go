package cmd

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderFlag_Set(t *testing.T) {
	testCases := []struct {
		Name   string
		Args   []string
		Header http.Header
		Err    string
	}{
		{
			Name:   "Single",
			Args:   []string{"Authorization=Bearer abc"},
			Header: http.Header{"Authorization": {"Bearer abc"}},
		},
		{
			Name:   "Quoted",
			Args:   []string{`"X-Api-Key=abc"`},
			Header: http.Header{"X-Api-Key": {"abc"}},
		},
		{
			Name:   "CommaSeparated",
			Args:   []string{"a=1,b=2"},
			Header: http.Header{"A": {"1"}, "B": {"2"}},
		},
		{
			Name:   "Repeated",
			Args:   []string{"a=1", "a=2,b=3"},
			Header: http.Header{"A": {"1", "2"}, "B": {"3"}},
		},
		{
			Name:   "ValueWithEquals",
			Args:   []string{`"a=x=y",b=2`},
			Header: http.Header{"A": {"x=y"}, "B": {"2"}},
		},
		{
			Name: "NoValue",
			Args: []string{"Authorization"},
			Err:  "Authorization must be formatted as key=value",
		},
		{
			Name: "NoKey",
			Args: []string{"=abc"},
			Err:  "=abc must be formatted as key=value",
		},
		{
			Name: "MalformedPair",
			Args: []string{"a=1,b,c=3"},
			Err:  "b must be formatted as key=value",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			f := newHeaderFlag()

			var err error
			for _, arg := range testCase.Args {
				if err = f.Set(arg); err != nil {
					break
				}
			}

			if testCase.Err != "" {
				require.Error(subT, err)
				assert.Equal(subT, testCase.Err, err.Error())
				return
			}
			require.NoError(subT, err)
			assert.True(subT, f.changed)
			assert.Equal(subT, testCase.Header, f.value)
		})
	}
}

func TestHeaderFlag_Merge(t *testing.T) {
	f := newHeaderFlag()
	require.NoError(t, f.Set("authorization=Bearer flag"))

	h := f.merge(map[string]string{"authorization": "Bearer config", "x-trace": "on"})

	assert.Equal(t, http.Header{
		"Authorization": {"Bearer flag"},
		"X-Trace":       {"on"},
	}, h)
	assert.Equal(t, "Authorization=Bearer flag", f.String())
}
