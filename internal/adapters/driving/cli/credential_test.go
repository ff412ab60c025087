package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/credcascade/internal/core/domain"
)

func TestFillCmd_Use(t *testing.T) {
	assert.Equal(t, "fill", fillCmd.Use)
	assert.Equal(t, "approve", approveCmd.Use)
	assert.Equal(t, "reject", rejectCmd.Use)
}

func TestFillCmd_PrintsResolvedContext(t *testing.T) {
	cascade := &mockCascade{
		fill: func(c *domain.Context) {
			c.Username = domain.String("alice")
			c.Password = domain.String("s3cret")
		},
	}
	history := &mockHistory{}
	env := setupTestApp(t, cascade, history)

	out, err := execute(t, "protocol=https\nhost=example.com\npath=org/repo.git\n\n", "fill")

	require.NoError(t, err)
	assert.Equal(t,
		"protocol=https\nhost=example.com\npath=org/repo.git\nusername=alice\npassword=s3cret\n\n",
		out)
	require.Len(t, cascade.actions, 1)
	assert.Equal(t, domain.ActionGet, cascade.actions[0].Kind)
	assert.Equal(t, domain.PromptVisible, cascade.prompts[0].Mode)
	assert.Equal(t, []domain.ActionKind{domain.ActionGet}, history.recorded)
	assert.True(t, env.closed)
}

func TestFillCmd_Incomplete(t *testing.T) {
	cascade := &mockCascade{
		fill: func(c *domain.Context) {
			c.Username = domain.String("alice")
		},
	}
	setupTestApp(t, cascade, nil)

	out, err := execute(t, "protocol=https\nhost=example.com\n", "fill")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), "https://alice@example.com")
	assert.Empty(t, out)
}

func TestFillCmd_Quit(t *testing.T) {
	cascade := &mockCascade{
		fill: func(c *domain.Context) {
			quit := true
			c.Quit = &quit
		},
	}
	setupTestApp(t, cascade, nil)

	out, err := execute(t, "protocol=https\nhost=example.com\n", "fill")

	assert.ErrorIs(t, err, ErrQuit)
	assert.Empty(t, out)
}

func TestFillCmd_CascadeErrorIsRecorded(t *testing.T) {
	invokeErr := &domain.HelperCommunicationError{Program: "broken", Err: errors.New("bad reply")}
	cascade := &mockCascade{err: invokeErr}
	history := &mockHistory{}
	setupTestApp(t, cascade, history)

	_, err := execute(t, "protocol=https\nhost=example.com\n", "fill")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHelperCommunication)
	assert.Contains(t, err.Error(), "get failed")
	require.Len(t, history.errs, 1)
	assert.Equal(t, invokeErr, history.errs[0])
}

func TestFillCmd_HistoryFailureIsNotFatal(t *testing.T) {
	cascade := &mockCascade{
		fill: func(c *domain.Context) {
			c.Username = domain.String("u")
			c.Password = domain.String("p")
		},
	}
	setupTestApp(t, cascade, &mockHistory{recordErr: errors.New("disk full")})

	_, err := execute(t, "host=example.com\n", "fill")

	assert.NoError(t, err)
}

func TestFillCmd_InvalidInput(t *testing.T) {
	cascade := &mockCascade{}
	setupTestApp(t, cascade, nil)

	_, err := execute(t, "not a pair\n", "fill")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "reading credential description")
	assert.Empty(t, cascade.actions, "cascade must not run on bad input")
}

func TestFillCmd_RejectsArgs(t *testing.T) {
	setupTestApp(t, &mockCascade{}, nil)

	_, err := execute(t, "", "fill", "extra")

	assert.Error(t, err)
}

func TestApproveCmd_RunsStore(t *testing.T) {
	cascade := &mockCascade{}
	history := &mockHistory{}
	setupTestApp(t, cascade, history)

	out, err := execute(t, "protocol=https\nhost=example.com\nusername=u\npassword=p\n", "approve")

	require.NoError(t, err)
	assert.Empty(t, out)
	require.Len(t, cascade.actions, 1)
	assert.Equal(t, domain.ActionStore, cascade.actions[0].Kind)
	assert.Equal(t, "p", domain.Value(cascade.actions[0].Context.Password))
	assert.Equal(t, []domain.ActionKind{domain.ActionStore}, history.recorded)
}

func TestRejectCmd_RunsErase(t *testing.T) {
	cascade := &mockCascade{}
	setupTestApp(t, cascade, nil)

	_, err := execute(t, "protocol=https\nhost=example.com\n", "reject")

	require.NoError(t, err)
	require.Len(t, cascade.actions, 1)
	assert.Equal(t, domain.ActionErase, cascade.actions[0].Kind)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "request", describe(nil))
	assert.Equal(t, "request", describe(&domain.Context{Host: domain.String("h")}))
	assert.Equal(t, "https://example.com/repo",
		describe(&domain.Context{Protocol: domain.String("https"), Host: domain.String("example.com"), Path: domain.String("repo")}))
}
