package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type settings struct {
	name  string
	level int
}

func TestApply(t *testing.T) {
	s := &settings{}
	err := Apply(s,
		NoError(func(s *settings) { s.name = "codec" }),
		New(func(s *settings) error {
			s.level = 3
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, "codec", s.name)
	require.Equal(t, 3, s.level)
}

func TestApply_StopsOnError(t *testing.T) {
	errBad := errors.New("bad option")
	s := &settings{}
	err := Apply(s,
		New(func(*settings) error { return errBad }),
		NoError(func(s *settings) { s.level = 9 }),
	)
	require.ErrorIs(t, err, errBad)
	require.Zero(t, s.level)
}

func TestApply_SkipsNil(t *testing.T) {
	s := &settings{}
	var nilOpt Option[*settings]
	require.NoError(t, Apply(s, nilOpt, NoError(func(s *settings) { s.level = 1 })))
	require.Equal(t, 1, s.level)
}
