// redact — маскирование секретов в логах. Токены, пароли и соли не должны
// попадать в лог ни целиком, ни частично: события логируются только
// с фиксированными литералами-заглушками.
package redact

func Token() string    { return "[REDACTED_TOKEN]" }
func Password() string { return "[REDACTED_PASSWORD]" }
func Salt() string     { return "[REDACTED_SALT]" }
