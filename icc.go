package printcolor

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	iccHeaderSize = 128
	iccTagEntry   = 12
)

var iccDeviceClasses = map[string]string{
	"scnr": "Input (Scanner)",
	"mntr": "Display (Monitor)",
	"prtr": "Output (Printer)",
	"link": "DeviceLink",
	"spac": "ColorSpace Conversion",
	"abst": "Abstract",
	"nmcl": "Named Color",
}

var iccColorSpaces = map[string]string{
	"XYZ ": "XYZ",
	"Lab ": "CIELAB",
	"Luv ": "CIELUV",
	"YCbr": "YCbCr",
	"Yxy ": "CIE Yxy",
	"RGB ": "RGB",
	"GRAY": "Grayscale",
	"HSV ": "HSV",
	"HLS ": "HLS",
	"CMYK": "CMYK",
	"CMY ": "CMY",
	"2CLR": "2 Color",
	"3CLR": "3 Color",
	"4CLR": "4 Color",
	"5CLR": "5 Color",
	"6CLR": "6 Color",
	"7CLR": "7 Color",
	"8CLR": "8 Color",
}

type ICCProfileInfo struct {
	ProfileName  string `json:"profile_name"`
	ColorSpace   string `json:"color_space"`
	DeviceClass  string `json:"device_class"`
	CreationDate string `json:"creation_date"`
	Description  string `json:"description"`
	Version      string `json:"version"`
	PCS          string `json:"pcs"`
	FileSize     int    `json:"file_size"`
}

// ReadICCProfile parses the header and description of the profile at path.
func ReadICCProfile(path string) (*ICCProfileInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ICC profile: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseICCProfile(data, name)
}

// ParseICCProfile reads the 128 byte header and the desc tag of an ICC
// profile. fallbackName is used as profile name when there is no description.
func ParseICCProfile(data []byte, fallbackName string) (*ICCProfileInfo, error) {
	if len(data) < iccHeaderSize {
		return nil, fmt.Errorf("%w: file too small to be an ICC profile (%d bytes)", ErrInvalidFormat, len(data))
	}
	if sig := data[36:40]; !bytes.Equal(sig, []byte("acsp")) {
		return nil, fmt.Errorf("%w: not an ICC profile (expected 'acsp' signature, got %q)", ErrInvalidFormat, sig)
	}

	be := binary.BigEndian
	v := be.Uint32(data[8:12])
	var date [6]uint16
	for i := range date {
		date[i] = be.Uint16(data[24+2*i:])
	}

	info := &ICCProfileInfo{
		Version:     fmt.Sprintf("%d.%d.%d", v>>24, (v>>20)&0x0F, (v>>16)&0x0F),
		DeviceClass: signatureName(data[12:16], iccDeviceClasses),
		ColorSpace:  signatureName(data[16:20], iccColorSpaces),
		PCS:         signatureName(data[20:24], iccColorSpaces),
		CreationDate: fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
			date[0], date[1], date[2], date[3], date[4], date[5]),
		Description: findDescription(data),
		FileSize:    len(data),
	}
	info.ProfileName = info.Description
	if info.ProfileName == "" {
		info.ProfileName = fallbackName
	}
	return info, nil
}

func signatureName(sig []byte, names map[string]string) string {
	if name, ok := names[string(sig)]; ok {
		return name
	}
	return strings.TrimSpace(decodeASCII(sig))
}

// findDescription walks the tag table for the first desc tag.
func findDescription(data []byte) string {
	if len(data) < iccHeaderSize+4 {
		return ""
	}
	be := binary.BigEndian
	count := uint64(be.Uint32(data[iccHeaderSize:]))
	if iccHeaderSize+4+count*iccTagEntry > uint64(len(data)) {
		return ""
	}
	for i := uint64(0); i < count; i++ {
		entry := data[iccHeaderSize+4+i*iccTagEntry:]
		offset := uint64(be.Uint32(entry[4:8]))
		size := uint64(be.Uint32(entry[8:12]))
		if string(entry[:4]) != "desc" {
			continue
		}
		if offset+size > uint64(len(data)) {
			continue
		}
		return readDescTag(data, offset, size)
	}
	return ""
}

// readDescTag understands the v2 textDescriptionType and the v4
// multiLocalizedUnicodeType, using the first record of the latter.
func readDescTag(data []byte, offset, size uint64) string {
	if size < 12 {
		return ""
	}
	be := binary.BigEndian
	tag := data[offset:]

	switch string(tag[:4]) {
	case "desc":
		n := uint64(be.Uint32(tag[8:12]))
		if n == 0 || offset+12+n > uint64(len(data)) {
			return ""
		}
		return decodeASCII(tag[12 : 12+n])
	case "mluc":
		if size < 28 || be.Uint32(tag[8:12]) == 0 {
			return ""
		}
		// first record: language, country, length, offset
		strLen := uint64(be.Uint32(tag[20:24]))
		strOffset := uint64(be.Uint32(tag[24:28]))
		start := offset + strOffset
		if start+strLen > uint64(len(data)) {
			return ""
		}
		return decodeUTF16(data[start : start+strLen])
	}
	return ""
}
