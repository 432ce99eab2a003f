package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/liuren-go/internal/domain"
)

func TestCastRequest(t *testing.T) {
	now := time.Date(2024, 7, 20, 12, 30, 0, 0, time.Local)

	req, err := castRequest(castOptions{clock: -1}, now)
	require.NoError(t, err)
	assert.Equal(t, 2024, req.Year)
	assert.Equal(t, 7, req.Month)
	assert.Equal(t, 20, req.Day)
	require.NotNil(t, req.ClockHour)
	assert.Equal(t, 12, *req.ClockHour)
	assert.Nil(t, req.Hour)

	req, err = castRequest(castOptions{date: "2024-02-10", hour: 3, clock: 5, lang: "en-US"}, now)
	require.NoError(t, err)
	assert.Equal(t, 10, req.Day)
	require.NotNil(t, req.Hour)
	assert.Equal(t, 3, *req.Hour)
	assert.Nil(t, req.ClockHour)
	assert.Equal(t, domain.LangEN, req.Lang)

	_, err = castRequest(castOptions{date: "10/02/2024", clock: -1}, now)
	assert.True(t, errors.Is(err, domain.ErrInvalidDate))

	_, err = castRequest(castOptions{lang: "fr", clock: -1}, now)
	assert.Error(t, err)
}

func TestRunCast_Offline(t *testing.T) {
	var buf bytes.Buffer
	opts := castOptions{date: "2024-02-10", hour: 1, clock: -1, lang: "zh"}

	require.NoError(t, runCast(context.Background(), &buf, opts, time.Now()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "1. 大安\n"), out)
	assert.Contains(t, out, "農曆: 2024/1/1")
	assert.NotContains(t, out, "\x1b[", "non-terminal output is plain")
}

func TestRunCast_InvalidHour(t *testing.T) {
	var buf bytes.Buffer
	err := runCast(context.Background(), &buf, castOptions{date: "2024-02-10", hour: 13, clock: -1}, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidHour)
	assert.Empty(t, buf.String())
}

func TestHoursCmd_Language(t *testing.T) {
	tests := []struct {
		args   []string
		header string
	}{
		{nil, "時辰"},
		{[]string{"--lang", "en"}, "Traditional hours"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		cmd := newHoursCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs(tt.args)

		require.NoError(t, cmd.Execute())
		assert.True(t, strings.HasPrefix(buf.String(), tt.header+"\n"), buf.String())
	}

	cmd := newHoursCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--lang", "fr"})
	assert.Error(t, cmd.Execute())
}
