package domain

// Client клиент системы бронирования
// ID назначается директорией клиентов последовательно и не переиспользуется
// Телефон и email опциональны, но хотя бы один канал связи обязателен:
// по нему выполняется дедупликация при добавлении
type Client struct {
	ID        int64
	FirstName string
	LastName  string
	Telephone *string
	Email     *string
}

// FullName возвращает полное имя клиента
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// HasContactChannel возвращает true, если указан телефон или email
func (c *Client) HasContactChannel() bool {
	return (c.Telephone != nil && *c.Telephone != "") ||
		(c.Email != nil && *c.Email != "")
}
