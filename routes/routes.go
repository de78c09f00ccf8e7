package routes

// Package routes wires gin route groups for the address parser service.
//
// - api.go: /v1/parse, /v1/parse/batch, /v1/review/*
// - web.go: /, /docs
// - routes.go: SetupAllRoutes entrypoint
