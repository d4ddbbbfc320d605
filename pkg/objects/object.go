package objects

import (
	"bytes"
	"fmt"
	"strconv"
)

// ObjectType distinguishes the two kinds of stored objects.
type ObjectType string

const (
	BlobType   ObjectType = "blob"
	CommitType ObjectType = "commit"
)

const (
	NullByte  = byte(0)
	SpaceByte = byte(' ')
)

func (o ObjectType) String() string { return string(o) }

// ParseObjectType converts a header type token to ObjectType.
func ParseObjectType(s string) (ObjectType, error) {
	switch ObjectType(s) {
	case BlobType, CommitType:
		return ObjectType(s), nil
	default:
		return "", fmt.Errorf("unknown object type: %s", s)
	}
}

// BaseObject is implemented by every storable object.
type BaseObject interface {
	Type() ObjectType

	// Content returns the object body without the header.
	Content() (ObjectContent, error)

	// Hash is the SHA-1 of the serialized form.
	Hash() (ObjectHash, error)
}

// ObjectContent is an object body without header.
type ObjectContent []byte

func (oc ObjectContent) Bytes() []byte  { return []byte(oc) }
func (oc ObjectContent) String() string { return string(oc) }

// SerializedObject is the stored form: "<type> <size>\0<content>".
type SerializedObject []byte

func (so SerializedObject) Bytes() []byte { return []byte(so) }

// NewSerializedObject prepends the header to content.
func NewSerializedObject(t ObjectType, content ObjectContent) SerializedObject {
	header := t.String() + " " + strconv.Itoa(len(content))
	buf := make([]byte, 0, len(header)+1+len(content))
	buf = append(buf, header...)
	buf = append(buf, NullByte)
	buf = append(buf, content...)
	return SerializedObject(buf)
}

// Serialize produces the stored form of obj.
func Serialize(obj BaseObject) (SerializedObject, error) {
	content, err := obj.Content()
	if err != nil {
		return nil, err
	}
	return NewSerializedObject(obj.Type(), content), nil
}

// ParseHeader splits a serialized object into type and body, checking the
// declared size against the body length.
func (so SerializedObject) ParseHeader() (ObjectType, ObjectContent, error) {
	data := []byte(so)
	nullIndex := bytes.IndexByte(data, NullByte)
	if nullIndex == -1 {
		return "", nil, fmt.Errorf("invalid object header: missing null byte")
	}

	spaceIndex := bytes.IndexByte(data[:nullIndex], SpaceByte)
	if spaceIndex == -1 {
		return "", nil, fmt.Errorf("invalid object header: missing space")
	}

	objType, err := ParseObjectType(string(data[:spaceIndex]))
	if err != nil {
		return "", nil, err
	}

	size, err := strconv.Atoi(string(data[spaceIndex+1 : nullIndex]))
	if err != nil {
		return "", nil, fmt.Errorf("invalid object size: %w", err)
	}

	content := data[nullIndex+1:]
	if len(content) != size {
		return "", nil, fmt.Errorf("object size mismatch: header says %d, got %d", size, len(content))
	}
	return objType, ObjectContent(content), nil
}

// ParseSerializedObject returns the body of so after checking that it is
// of the expected type.
func ParseSerializedObject(so []byte, want ObjectType) (ObjectContent, error) {
	got, content, err := SerializedObject(so).ParseHeader()
	if err != nil {
		return nil, err
	}
	if got != want {
		return nil, fmt.Errorf("object type mismatch: expected %s, got %s", want, got)
	}
	return content, nil
}
