package domain

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

type IDGenerator interface {
	Generate() (string, error)
}
