package blob

import (
	"github.com/utkarsh5026/gitlet/pkg/objects"
)

// Blob is an immutable file snapshot. Its identity is derived from content
// alone, so two files with equal bytes share one blob.
type Blob struct {
	content objects.ObjectContent
	hash    objects.ObjectHash
}

// NewBlob wraps raw file data.
func NewBlob(data []byte) *Blob {
	return &Blob{content: objects.ObjectContent(data)}
}

// ParseBlob decodes a stored blob.
func ParseBlob(data []byte) (*Blob, error) {
	content, err := objects.ParseSerializedObject(data, objects.BlobType)
	if err != nil {
		return nil, err
	}
	return &Blob{
		content: content,
		hash:    objects.NewObjectHash(data),
	}, nil
}

func (b *Blob) Type() objects.ObjectType { return objects.BlobType }

func (b *Blob) Content() (objects.ObjectContent, error) { return b.content, nil }

// Data returns the file bytes.
func (b *Blob) Data() []byte { return b.content.Bytes() }

func (b *Blob) Hash() (objects.ObjectHash, error) {
	if b.hash == "" {
		b.hash = objects.ComputeObjectHash(objects.BlobType, b.content)
	}
	return b.hash, nil
}

// HashOf computes the blob identity of data without allocating a Blob.
func HashOf(data []byte) objects.ObjectHash {
	return objects.ComputeObjectHash(objects.BlobType, objects.ObjectContent(data))
}
