// Package models defines the client-side projections of the portal API's
// JSON resources. Field names follow the API's Spanish wire names.
package models

import "strings"

// UsuarioAPI is the account record exactly as the remote API returns it
// inside auth responses.
type UsuarioAPI struct {
	ID       string `json:"id"`
	Cedula   string `json:"cedula"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
}

// User is the client-side account shape. FullName is derived, never stored
// independently: it is recomputed whenever a User is built from the API shape.
type User struct {
	ID       string `json:"id"`
	Cedula   string `json:"cedula"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
	FullName string `json:"fullName"`
}

// NewUserFromAPI maps the remote account shape into a User, deriving FullName.
func NewUserFromAPI(u UsuarioAPI) User {
	return User{
		ID:       u.ID,
		Cedula:   u.Cedula,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Correo:   u.Correo,
		Telefono: u.Telefono,
		FullName: strings.TrimSpace(u.Nombre + " " + u.Apellido),
	}
}
