package security

// deviceTokenAlphabet avoids characters that are easy to misread when a
// token is copied off a device label.
const deviceTokenAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

const deviceTokenLength = 40

// GenerateDeviceToken returns a fresh shared secret for a wearable device.
func GenerateDeviceToken() (string, error) {
	return RandomString(deviceTokenLength, deviceTokenAlphabet)
}
