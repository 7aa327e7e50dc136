package users

// User es una cuenta del API. Username es la clave natural e inmutable.
type User struct {
	Username string
	Password string
	Enabled  bool
	Roles    []string // normalizados con prefijo ROLE_
}
