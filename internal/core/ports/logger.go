package ports

// Logger is the structured logging port. Info narrates normal
// progress, Warn flags conditions the run survives, and Error renders
// a failure together with its attached metadata.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
