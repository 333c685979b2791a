package dto

// ErrorResponse cuerpo de error HTTP. Message siempre es texto seguro para el
// cliente; el detalle interno va al log, nunca a la respuesta.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje informativo.
type MessageResponse struct {
	Message string `json:"message"`
}
