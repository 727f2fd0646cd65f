package schema

// ToastLevel severity of a toast notification
type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastInfo    ToastLevel = "info"
)

// Toast one notification shown to the user on the next rendered page
type Toast struct {
	Level   ToastLevel `json:"level"`
	Message string     `json:"message"`
}
