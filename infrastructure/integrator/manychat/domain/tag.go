package manychatdomain

// Tag é uma tag de segmentação cadastrada no provedor de chat
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Subscriber é um assinante retornado pela busca por tag. Só os campos
// usados nas contagens do funil são mapeados.
type Subscriber struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Status    string `json:"status,omitempty"`
}

// PageStats são os contadores gerais da página no provedor de chat
type PageStats struct {
	ActiveCount int `json:"active_count"`
	TotalCount  int `json:"total_count"`
}
