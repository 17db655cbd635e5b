package ports

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// Codec turns the data owned by a handle into bytes and back. The on-disk
// format is whatever the implementation defines; the core never inspects it.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}
