package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRenderWarnings(t *testing.T) {
	assert.Empty(t, RenderWarnings(nil))

	msg := RenderWarnings([]string{"Bob Lee", "Ann Fox"})
	assert.Contains(t, msg, "Bob Lee\nAnn Fox")
	assert.Contains(t, msg, "manually")
}

func TestTextNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := &TextNotifier{Out: &buf}

	n.Warnings(nil)
	assert.Empty(t, buf.String())

	n.Warnings([]string{"Bob Lee"})
	n.Done(Summary{Count: 2, Path: "/tmp/contacts.xlsx"})

	out := buf.String()
	assert.Contains(t, out, "Bob Lee")
	assert.Contains(t, out, "/tmp/contacts.xlsx")
	assert.Contains(t, out, "Number of contacts found: 2")
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := &LogNotifier{Logger: zap.New(core)}

	n.Warnings(nil)
	n.Warnings([]string{"Bob Lee"})
	n.Done(Summary{Count: 1, Path: "out.xlsx"})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "contacts not exported properly", entries[0].Message)
	assert.Equal(t, "contact list saved", entries[1].Message)
	assert.Equal(t, int64(1), entries[1].ContextMap()["contacts"])
}

func TestMulti(t *testing.T) {
	var a, b bytes.Buffer
	m := Multi{&TextNotifier{Out: &a}, &TextNotifier{Out: &b}}

	m.Done(Summary{Count: 3, Path: "x.xlsx"})

	assert.Equal(t, a.String(), b.String())
	assert.NotEmpty(t, a.String())
}
