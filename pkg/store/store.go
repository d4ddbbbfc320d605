package store

import (
	"fmt"

	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/objects/blob"
	"github.com/utkarsh5026/gitlet/pkg/objects/commit"
)

// ObjectStore is a content-addressed object database. Writes are
// idempotent and objects are never modified or removed. Implementations
// must be safe for concurrent use; push and fetch copy objects from
// several goroutines.
type ObjectStore interface {
	// WriteObject stores obj and returns its id. Storing an object that is
	// already present is a no-op.
	WriteObject(obj objects.BaseObject) (objects.ObjectHash, error)

	// ReadObject returns the decoded object, or a *NotFoundError.
	ReadObject(hash objects.ObjectHash) (objects.BaseObject, error)

	// HasObject reports whether hash is present.
	HasObject(hash objects.ObjectHash) (bool, error)

	// ReadRaw returns the serialized bytes of an object, or a *NotFoundError.
	ReadRaw(hash objects.ObjectHash) (objects.SerializedObject, error)

	// WriteRaw stores pre-serialized bytes under hash. The bytes must hash
	// to hash.
	WriteRaw(hash objects.ObjectHash, data objects.SerializedObject) error

	// ListObjects returns every stored id in unspecified order.
	ListObjects() ([]objects.ObjectHash, error)
}

// decode turns serialized bytes into the matching object type.
func decode(data objects.SerializedObject) (objects.BaseObject, error) {
	objType, _, err := data.ParseHeader()
	if err != nil {
		return nil, fmt.Errorf("failed to parse object header: %w", err)
	}

	switch objType {
	case objects.BlobType:
		return blob.ParseBlob(data)
	case objects.CommitType:
		return commit.ParseCommit(data)
	default:
		return nil, fmt.Errorf("unknown object type: %s", objType)
	}
}

func verifyRaw(hash objects.ObjectHash, data objects.SerializedObject) error {
	if got := objects.NewObjectHash(data); got != hash {
		return newCorruptError("write_raw", hash, fmt.Errorf("content hashes to %s", got))
	}
	return nil
}

// ReadCommit loads hash and checks that it is a commit.
func ReadCommit(s ObjectStore, hash objects.ObjectHash) (*commit.Commit, error) {
	obj, err := s.ReadObject(hash)
	if err != nil {
		return nil, err
	}
	c, ok := obj.(*commit.Commit)
	if !ok {
		return nil, newTypeMismatchError(hash, objects.CommitType, obj.Type())
	}
	return c, nil
}

// ReadBlob loads hash and checks that it is a blob.
func ReadBlob(s ObjectStore, hash objects.ObjectHash) (*blob.Blob, error) {
	obj, err := s.ReadObject(hash)
	if err != nil {
		return nil, err
	}
	b, ok := obj.(*blob.Blob)
	if !ok {
		return nil, newTypeMismatchError(hash, objects.BlobType, obj.Type())
	}
	return b, nil
}

// FindByPrefix returns every stored id that begins with prefix. The prefix
// must be non-empty hex.
func FindByPrefix(s ObjectStore, prefix string) ([]objects.ObjectHash, error) {
	if !objects.IsHex(prefix) || len(prefix) > objects.HashLength {
		return nil, nil
	}
	if p, ok := s.(interface {
		findByPrefix(string) ([]objects.ObjectHash, error)
	}); ok {
		return p.findByPrefix(prefix)
	}

	all, err := s.ListObjects()
	if err != nil {
		return nil, err
	}
	var out []objects.ObjectHash
	for _, h := range all {
		if h.HasPrefix(prefix) {
			out = append(out, h)
		}
	}
	return out, nil
}
