package court

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court.repository: court not found")

	// ErrLockNotAvailable возвращается, когда строки услуг корта заблокированы
	// конкурирующей транзакцией (FOR UPDATE NOWAIT отказал)
	ErrLockNotAvailable = errors.New("court.repository: court services are locked by another transaction")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("court.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("court.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("court.repository: failed to scan row")
)
