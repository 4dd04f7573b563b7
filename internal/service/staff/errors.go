package staff

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	// Несуществующий email и неверный пароль неразличимы для клиента
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff user not found")

	// ErrRoleNotFound возвращается, когда роль не найдена
	ErrRoleNotFound = errors.New("role not found")

	// ErrEmailTaken возвращается, когда email уже занят другим сотрудником
	ErrEmailTaken = errors.New("email is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
