package enricher

import "github.com/lerenn/issues-full/pkg/logger"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=sink.go -destination=mocksink.gen.go -package=enricher

// ResultSink receives the identifier of the full issue resolved for each preview.
type ResultSink interface {
	Report(previewID, fullID int64)
}

// SinkFunc adapts a function to the ResultSink interface.
type SinkFunc func(previewID, fullID int64)

// Report calls f.
func (f SinkFunc) Report(previewID, fullID int64) {
	f(previewID, fullID)
}

// LogSink reports resolutions through a logger.
type LogSink struct {
	Logger logger.Logger
}

// Report logs the resolution.
func (s LogSink) Report(previewID, fullID int64) {
	s.Logger.Logf("Preview %d resolved to issue %d", previewID, fullID)
}
