package helpers

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"os"
)

var iv = []byte{35, 46, 57, 24, 85, 35, 24, 74, 87, 35, 88, 98, 66, 32, 14, 05}

func Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func Encrypt(randomString string) (string, error) {
	block, err := aes.NewCipher([]byte(os.Getenv("SECRET")))

	if err != nil {
		return "", err
	}

	plainText := []byte(randomString)
	cfb := cipher.NewCFBEncrypter(block, iv)
	cipherText := make([]byte, len(plainText))
	cfb.XORKeyStream(cipherText, plainText)
	return Encode(cipherText), nil
}
