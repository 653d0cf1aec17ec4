package config

type Store struct {
	Driver StoreDriver `env:"STORE_DRIVER" envDefault:"MONGO"`
}

// StoreDriver selects the document store backing the repositories.
type StoreDriver uint8

const (
	StoreDriverMongo StoreDriver = iota
	StoreDriverPostgres
	StoreDriverMemory
)

var storeDriverNames = map[string]StoreDriver{
	"MONGO":      StoreDriverMongo,
	"MONGODB":    StoreDriverMongo,
	"POSTGRES":   StoreDriverPostgres,
	"POSTGRESQL": StoreDriverPostgres,
	"MEMORY":     StoreDriverMemory,
}

func (d StoreDriver) String() string {
	return []string{"MONGO", "POSTGRES", "MEMORY"}[d]
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *StoreDriver) UnmarshalText(text []byte) error {
	v, err := parseEnum("store driver", storeDriverNames, text)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d StoreDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
