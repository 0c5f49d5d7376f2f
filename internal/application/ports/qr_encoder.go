package ports

type QREncoder interface {
	Encode(url string) (string, error)
}
