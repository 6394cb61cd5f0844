package resource

type Kind int

const (
	Global Kind = iota
	Tab
	Server
	Log
)

func (k Kind) String() string {
	return [...]string{
		"global",
		"tab",
		"srv",
		"log",
	}[k]
}
