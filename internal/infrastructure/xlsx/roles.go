package xlsx

import (
	"strings"

	"github.com/jhoicas/retail-ingest/internal/domain/ingest"
)

// Role rol de una hoja dentro del libro.
type Role string

const (
	RoleSales     Role = "sales"
	RoleProducts  Role = "products"
	RoleTransfers Role = "transfers"
	RoleUnknown   Role = ""
)

// positionalRoles orden en que se asignan los roles a hojas sin nombre reconocible.
var positionalRoles = []Role{RoleSales, RoleProducts, RoleTransfers}

type roleRule struct {
	role     Role
	keywords []string
}

// Las reglas se evalúan en orden; traspasos va primero porque "envio de ventas"
// es un traspaso y no una hoja de ventas.
var roleRules = []roleRule{
	{RoleTransfers, []string{"traspaso", "transfer", "envio", "envios", "movimiento"}},
	{RoleSales, []string{"venta", "ventas", "sales", "ticket", "tpv"}},
	{RoleProducts, []string{"producto", "productos", "product", "inventario", "stock", "articulo", "catalogo", "pedido"}},
}

// roleFromName rol según el nombre de la hoja, RoleUnknown si ninguna regla casa.
func roleFromName(sheetName string) Role {
	name := ingest.NormalizeKey(sheetName)
	if name == "" {
		return RoleUnknown
	}
	for _, rule := range roleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.role
			}
		}
	}
	return RoleUnknown
}

// assignRoles asigna un rol a cada hoja: primero por nombre y después, a las
// hojas sin rol, los roles libres en orden (ventas, productos, traspasos).
// Cada rol se asigna como mucho a una hoja; el resto queda como RoleUnknown.
func assignRoles(sheetNames []string) []Role {
	roles := make([]Role, len(sheetNames))
	taken := make(map[Role]bool, len(positionalRoles))
	for i, name := range sheetNames {
		r := roleFromName(name)
		if r == RoleUnknown || taken[r] {
			continue
		}
		roles[i] = r
		taken[r] = true
	}
	next := 0
	for i := range sheetNames {
		if roles[i] != RoleUnknown || roleFromName(sheetNames[i]) != RoleUnknown {
			continue
		}
		for next < len(positionalRoles) && taken[positionalRoles[next]] {
			next++
		}
		if next == len(positionalRoles) {
			break
		}
		roles[i] = positionalRoles[next]
		taken[positionalRoles[next]] = true
	}
	return roles
}
