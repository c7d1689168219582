package log_test

import (
	"testing"

	"rocmclean/pkg/log"

	g "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
)

func TestLineWriter_completedLines(t *testing.T) {
	g.RegisterTestingT(t)

	logger, hook := logrustest.NewNullLogger()
	writer := log.NewLineWriter(logrus.NewEntry(logger), logrus.InfoLevel)

	n, err := writer.Write([]byte("first line\nsecond line\n"))

	g.Expect(err).NotTo(g.HaveOccurred())
	g.Expect(n).To(g.Equal(23))
	g.Expect(hook.Entries).To(g.HaveLen(2))
	g.Expect(hook.Entries[0].Message).To(g.Equal("first line"))
	g.Expect(hook.Entries[0].Level).To(g.Equal(logrus.InfoLevel))
	g.Expect(hook.Entries[1].Message).To(g.Equal("second line"))
}

func TestLineWriter_partialLineBuffered(t *testing.T) {
	g.RegisterTestingT(t)

	logger, hook := logrustest.NewNullLogger()
	writer := log.NewLineWriter(logrus.NewEntry(logger), logrus.InfoLevel)

	_, err := writer.Write([]byte("removing "))
	g.Expect(err).NotTo(g.HaveOccurred())
	g.Expect(hook.Entries).To(g.BeEmpty())

	_, err = writer.Write([]byte("gfx90a\n"))
	g.Expect(err).NotTo(g.HaveOccurred())
	g.Expect(hook.Entries).To(g.HaveLen(1))
	g.Expect(hook.LastEntry().Message).To(g.Equal("removing gfx90a"))
}

func TestLineWriter_closeFlushesPartial(t *testing.T) {
	g.RegisterTestingT(t)

	logger, hook := logrustest.NewNullLogger()
	writer := log.NewLineWriter(logrus.NewEntry(logger), logrus.ErrorLevel)

	_, err := writer.Write([]byte("no trailing newline"))
	g.Expect(err).NotTo(g.HaveOccurred())
	g.Expect(hook.Entries).To(g.BeEmpty())

	g.Expect(writer.Close()).To(g.Succeed())
	g.Expect(hook.Entries).To(g.HaveLen(1))
	g.Expect(hook.LastEntry().Message).To(g.Equal("no trailing newline"))
	g.Expect(hook.LastEntry().Level).To(g.Equal(logrus.ErrorLevel))
}

func TestLineWriter_trailingWhitespaceStripped(t *testing.T) {
	g.RegisterTestingT(t)

	logger, hook := logrustest.NewNullLogger()
	writer := log.NewLineWriter(logrus.NewEntry(logger), logrus.InfoLevel)

	_, err := writer.Write([]byte("padded   \r\n"))

	g.Expect(err).NotTo(g.HaveOccurred())
	g.Expect(hook.Entries).To(g.HaveLen(1))
	g.Expect(hook.LastEntry().Message).To(g.Equal("padded"))
}

func TestLineWriter_blankLinesDropped(t *testing.T) {
	g.RegisterTestingT(t)

	logger, hook := logrustest.NewNullLogger()
	writer := log.NewLineWriter(logrus.NewEntry(logger), logrus.InfoLevel)

	_, err := writer.Write([]byte("\n\nkept\n\n"))

	g.Expect(err).NotTo(g.HaveOccurred())
	g.Expect(hook.Entries).To(g.HaveLen(1))
	g.Expect(hook.LastEntry().Message).To(g.Equal("kept"))
}
