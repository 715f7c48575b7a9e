package seeders

var rolesData = []string{
	"Administrador",
	"Supervisor",
	"Técnico",
	"Consulta",
}

type applicationSeed struct {
	Name        string
	Description string
}

var applicationsData = []applicationSeed{
	{Name: "Activos", Description: "Gestión de plantas, sistemas y equipos"},
	{Name: "Mantenimiento", Description: "Registro de actividades de mantenimiento"},
	{Name: "Personal", Description: "Cargos, personas y currículums"},
	{Name: "Clientes", Description: "Clientes y contratos"},
	{Name: "Administración", Description: "Usuarios, roles y aplicaciones"},
}

// roleApplications lists the applications granted to each role.
var roleApplications = map[string][]string{
	"Administrador": {"Activos", "Mantenimiento", "Personal", "Clientes", "Administración"},
	"Supervisor":    {"Activos", "Mantenimiento", "Personal", "Clientes"},
	"Técnico":       {"Activos", "Mantenimiento"},
	"Consulta":      {"Activos"},
}

var assetTypesData = []string{
	"Bomba",
	"Motor eléctrico",
	"Compresor",
	"Transformador",
	"Tablero eléctrico",
	"Válvula",
	"Intercambiador de calor",
}

var positionsData = []string{
	"Ingeniero de mantenimiento",
	"Técnico electricista",
	"Técnico mecánico",
	"Supervisor de planta",
	"Operador",
}
