package dto

import "time"

// UploadResponse respuesta de una carga persistida.
type UploadResponse struct {
	UploadID  string   `json:"upload_id"`
	Sales     int      `json:"sales"`
	Products  int      `json:"products"`
	Transfers int      `json:"transfers"`
	Warnings  []string `json:"warnings"`
}

// UploadSummary lote de carga en listados.
type UploadSummary struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	Sales     int       `json:"sales"`
	Products  int       `json:"products"`
	Transfers int       `json:"transfers"`
	Warnings  int       `json:"warnings"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadListResponse listado paginado de cargas del usuario.
type UploadListResponse struct {
	Items []UploadSummary `json:"items"`
	Page  PageResponse    `json:"page"`
}

// DeleteUploadsResponse número de cargas eliminadas.
type DeleteUploadsResponse struct {
	Deleted int64 `json:"deleted"`
}

// ValidationErrorResponse cuerpo 422 con los primeros errores de fila.
type ValidationErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
	Total   int      `json:"total"`
}
