package authz

// Application names ("aplicacion.nombre") that gate the route groups.
const (
	// Superuser grants every application.
	Superuser = "Administración"

	AppAssets      = "Activos"
	AppMaintenance = "Mantenimiento"
	AppStaff       = "Personal"
	AppClients     = "Clientes"
)
