package cli

import (
	"bytes"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/aretw0/catena/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestReportError(t *testing.T) {
	t.Run("Source error", func(t *testing.T) {
		var buf bytes.Buffer
		ReportError(&buf, fmt.Errorf("wrapped: %w", &domain.SourceError{Path: "a.txt", Err: syscall.ENOENT}))
		assert.Equal(t, "a.txt: "+syscall.ENOENT.Error()+"\n", buf.String())
	})

	t.Run("Plain error", func(t *testing.T) {
		var buf bytes.Buffer
		ReportError(&buf, errors.New("write output: broken pipe"))
		assert.Equal(t, "write output: broken pipe\n", buf.String())
	})

	t.Run("No escape codes off a terminal", func(t *testing.T) {
		var buf bytes.Buffer
		ReportError(&buf, &domain.SourceError{Path: "dir", Err: domain.ErrIsDirectory})
		assert.NotContains(t, buf.String(), "\x1b[")
	})
}
