package catalogservice

// Company модель компании из CatalogService
type Company struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Timezone   string     `json:"timezone"`
	ManagerIDs []int64    `json:"manager_ids"`
	Resources  []Resource `json:"resources"`
}

// Resource модель ресурса (мастер, кабинет, бокс) из CatalogService
type Resource struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// Service модель услуги из CatalogService
type Service struct {
	ID                       int64   `json:"id"`
	CompanyID                int64   `json:"company_id"`
	Name                     string  `json:"name"`
	DurationMinutes          int     `json:"duration_minutes"`
	BufferAfterMinutes       int     `json:"buffer_after_minutes"`
	ReservationDeadlineHours int     `json:"reservation_deadline_hours"`
	EligibleResourceIDs      []int64 `json:"eligible_resource_ids"` // пустой список = любой ресурс
	DayRestriction           string  `json:"day_restriction"`       // none | weekday | weekend
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HasResource проверяет, что ресурс существует в компании
func (c *Company) HasResource(resourceID int64) bool {
	for _, r := range c.Resources {
		if r.ID == resourceID {
			return true
		}
	}
	return false
}

// IsManager проверяет, что пользователь - менеджер компании
func (c *Company) IsManager(userID int64) bool {
	for _, id := range c.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
