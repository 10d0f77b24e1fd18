package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"hash/crc32"
	"log"
	"os"
	"path/filepath"

	"github.com/denisbrodbeck/machineid"
	"github.com/vinser/mazechase/internal/ambilite"
	"github.com/pkg/errors"
)

// State holds the player's saved preferences. Scores are never saved.
type State struct {
	Mute        bool    `json:"mute"`      // Mute all sounds
	AxisPace    bool    `json:"axis_pace"` // Faster moves along rows
	NightOption string  `json:"night"`     // Night palette: never, always or real
	Lat         float64 `json:"lat"`       // Location for the real night palette
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
	Located     bool    `json:"located"` // Location was given or looked up
}

const appID = "mazechase"

var encryptionKey = generateKey()

// generateKey creates a 32-byte AES key from system-specific data.
func generateKey() []byte {
	id, err := machineid.ProtectedID(appID)
	if err != nil {
		id = "default-" + appID + "-id" // Fallback if machine ID fails
	}
	sum := sha256.Sum256([]byte(id))
	return sum[:]
}

// New returns the default preferences.
func New() *State {
	return &State{
		NightOption: ambilite.Never,
		Lat:         52.3728,
		Lon:         4.88805,
		Timezone:    "Europe/Amsterdam",
	}
}

// Path returns the save file inside the user config directory.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "config dir")
	}
	return filepath.Join(configDir, appID, "state.dat"), nil
}

// Load reads the saved preferences, or the defaults when there are none.
func Load() *State {
	path, err := Path()
	if err != nil {
		return New()
	}
	return LoadFrom(path)
}

// LoadFrom reads preferences from path. A missing, foreign or corrupt file
// yields the defaults.
func LoadFrom(path string) *State {
	encrypted, err := os.ReadFile(path)
	if err != nil {
		return New()
	}

	decrypted, err := decrypt(encrypted)
	if err != nil || len(decrypted) < 5 {
		log.Printf("state: ignoring unreadable %s", path)
		return New()
	}

	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		log.Printf("state: checksum mismatch in %s", path)
		return New()
	}

	s := New()
	if err = json.Unmarshal(payload, s); err != nil {
		return New() // Corrupted JSON
	}
	return s
}

// Save persists the preferences to the default path.
func (s *State) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return s.SaveTo(path)
}

// SaveTo persists the preferences to an encrypted file with an integrity check.
func (s *State) SaveTo(path string) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "marshal state")
	}

	// Prepend CRC32 checksum
	crc := crc32.ChecksumIEEE(raw)
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc)
	copy(data[4:], raw)

	encrypted, err := encrypt(data)
	if err != nil {
		return errors.Wrap(err, "encrypt state")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "state dir")
	}
	return errors.Wrap(os.WriteFile(path, encrypted, 0644), "write state")
}

// ======================
// 🔐 AES Encryption
// ======================

func encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	return gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
}
