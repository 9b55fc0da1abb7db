package clientservice

// Client модель клиента из ClientService
type Client struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	// CanBook признак, что за клиентом закреплён пользователь с правом
	// создавать бронирования
	CanBook bool `json:"can_book"`
}

// ErrorResponse модель ошибки от ClientService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
