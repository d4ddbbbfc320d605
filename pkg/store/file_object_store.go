package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/utkarsh5026/gitlet/pkg/common/fileops"
	"github.com/utkarsh5026/gitlet/pkg/objects"
	"github.com/utkarsh5026/gitlet/pkg/repository/scpath"
)

// FileObjectStore keeps one read-only file per object under
// .gitlet/objects, fanned out by the first two hash characters:
//
//	.gitlet/objects/
//	├─ ab/
//	│  └─ cdef1234...   remaining 38 characters
//	└─ ...
//
// Files hold the uncompressed serialized form.
type FileObjectStore struct {
	sourcePath scpath.SourcePath
}

// NewFileObjectStore creates an uninitialized store.
func NewFileObjectStore() *FileObjectStore {
	return &FileObjectStore{}
}

// Initialize binds the store to a metadata directory and creates the
// objects directory. It is also used to open another repository's store
// during push and fetch.
func (fos *FileObjectStore) Initialize(sourcePath scpath.SourcePath) error {
	if err := fileops.EnsureDir(sourcePath.ObjectsPath()); err != nil {
		return fmt.Errorf("failed to initialize object store: %w", err)
	}
	fos.sourcePath = sourcePath
	return nil
}

// IsInitialized reports whether Initialize succeeded.
func (fos *FileObjectStore) IsInitialized() bool {
	return fos.sourcePath != ""
}

func (fos *FileObjectStore) WriteObject(obj objects.BaseObject) (objects.ObjectHash, error) {
	serialized, err := objects.Serialize(obj)
	if err != nil {
		return "", fmt.Errorf("failed to serialize object: %w", err)
	}
	hash := objects.NewObjectHash(serialized)
	if err := fos.write(hash, serialized); err != nil {
		return "", err
	}
	return hash, nil
}

func (fos *FileObjectStore) WriteRaw(hash objects.ObjectHash, data objects.SerializedObject) error {
	if err := verifyRaw(hash, data); err != nil {
		return err
	}
	return fos.write(hash, data)
}

func (fos *FileObjectStore) write(hash objects.ObjectHash, data objects.SerializedObject) error {
	path, err := fos.resolve(hash)
	if err != nil {
		return err
	}

	exists, err := fileops.Exists(path)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := fileops.AtomicWrite(path, data, 0444); err != nil {
		return fmt.Errorf("failed to write object %s: %w", hash, err)
	}
	return nil
}

func (fos *FileObjectStore) ReadObject(hash objects.ObjectHash) (objects.BaseObject, error) {
	data, err := fos.ReadRaw(hash)
	if err != nil {
		return nil, err
	}
	obj, err := decode(data)
	if err != nil {
		return nil, newCorruptError("read", hash, err)
	}
	return obj, nil
}

func (fos *FileObjectStore) ReadRaw(hash objects.ObjectHash) (objects.SerializedObject, error) {
	path, err := fos.resolve(hash)
	if err != nil {
		return nil, err
	}

	data, err := fileops.ReadBytes(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read object file: %w", err)
	}
	if data == nil {
		return nil, newNotFoundError("read", hash)
	}
	return objects.SerializedObject(data), nil
}

func (fos *FileObjectStore) HasObject(hash objects.ObjectHash) (bool, error) {
	path, err := fos.resolve(hash)
	if err != nil {
		return false, err
	}
	return fileops.Exists(path)
}

func (fos *FileObjectStore) ListObjects() ([]objects.ObjectHash, error) {
	if err := fos.ensureInitialized(); err != nil {
		return nil, err
	}

	fanout, err := os.ReadDir(fos.sourcePath.ObjectsPath().String())
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	var out []objects.ObjectHash
	for _, dir := range fanout {
		if !dir.IsDir() || len(dir.Name()) != 2 {
			continue
		}
		hashes, err := fos.listFanout(dir.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, hashes...)
	}
	return out, nil
}

// findByPrefix only scans the fan-out directory the prefix selects when
// the prefix is long enough to pick one.
func (fos *FileObjectStore) findByPrefix(prefix string) ([]objects.ObjectHash, error) {
	prefix = strings.ToLower(prefix)
	if len(prefix) < 2 {
		all, err := fos.ListObjects()
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

	hashes, err := fos.listFanout(prefix[:2])
	if err != nil {
		return nil, err
	}
	var out []objects.ObjectHash
	for _, h := range hashes {
		if h.HasPrefix(prefix) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (fos *FileObjectStore) listFanout(dir string) ([]objects.ObjectHash, error) {
	entries, err := os.ReadDir(fos.sourcePath.ObjectsPath().Join(dir).String())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	var out []objects.ObjectHash
	for _, e := range entries {
		h := objects.ObjectHash(dir + e.Name())
		if e.Type().IsRegular() && h.Validate() == nil {
			out = append(out, h)
		}
	}
	return out, nil
}

func (fos *FileObjectStore) resolve(hash objects.ObjectHash) (scpath.AbsolutePath, error) {
	if err := fos.ensureInitialized(); err != nil {
		return "", err
	}
	if err := hash.Validate(); err != nil {
		return "", fmt.Errorf("invalid hash: %w", err)
	}
	return fos.sourcePath.ObjectFilePath(hash.String()), nil
}

func (fos *FileObjectStore) ensureInitialized() error {
	if !fos.IsInitialized() {
		return fmt.Errorf("object store not initialized")
	}
	return nil
}
