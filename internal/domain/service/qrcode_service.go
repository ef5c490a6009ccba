package service

// QRCodeService renders a payload as a QR code image.
type QRCodeService interface {
	// GenerateURL encodes the given URL as a PNG image.
	GenerateURL(url string) ([]byte, error)
}
