package main

// @title           Gestor API
// @version         1.0
// @description     API del sistema de gestión de clientes, productos, insumos y pedidos

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabecera de autenticación JWT con esquema Bearer. Ejemplo: "Bearer {token}"
