package get_court_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_court_availability: invalid input data")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("get_court_availability: court not found")

	// ErrNoServiceAssociation возвращается, когда у корта нет ни одной услуги
	ErrNoServiceAssociation = errors.New("get_court_availability: court has no service associations")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_court_availability: internal error")
)
