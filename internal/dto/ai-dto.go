package dto

type GenerateProcedureDTO struct {
	EquipmentType string `json:"tipo_equipo" validate:"required,not_blank"`
	Brand         string `json:"marca"`  // defaults to "Genérico"
	Model         string `json:"modelo"` // defaults to "Genérico"
}

type ProcedureStepDTO struct {
	Title       string  `json:"titulo"`
	Description string  `json:"descripcion"`
	Notes       *string `json:"notas,omitempty"`
}

type ProcedureDTO struct {
	Steps       []ProcedureStepDTO `json:"pasos"`
	Precautions string             `json:"precauciones"`
	Tools       string             `json:"herramientas"`
}

type ResumeListDTO struct {
	Files []string `json:"archivos"`
}

type ResumeIndexDTO struct {
	Message   string   `json:"message"`
	Documents []string `json:"documentos_indexados"`
}

type ResumeAnswerDTO struct {
	Answer string `json:"respuesta"`
}

type StatusDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
