package find

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// TypeLetter identifies an entry's filesystem type using the single-letter
// codes understood by -type.
type TypeLetter byte

const (
	TypeBlock   TypeLetter = 'b'
	TypeChar    TypeLetter = 'c'
	TypeDir     TypeLetter = 'd'
	TypeFIFO    TypeLetter = 'p'
	TypeFile    TypeLetter = 'f'
	TypeSymlink TypeLetter = 'l'
	TypeSocket  TypeLetter = 's'
)

// ValidTypeLetter reports whether c is one of the supported -type codes.
func ValidTypeLetter(c byte) bool {
	switch TypeLetter(c) {
	case TypeBlock, TypeChar, TypeDir, TypeFIFO, TypeFile, TypeSymlink, TypeSocket:
		return true
	}
	return false
}

// Identity is the (device, inode) pair that names a filesystem object.
// Path strings cannot serve here: distinct paths can denote the same entry.
type Identity struct {
	Dev uint64
	Ino uint64
}

// EntryMeta is a snapshot of one entry's metadata taken at visit time. It is
// derived fresh for every visit and never cached across visits.
type EntryMeta struct {
	Type    TypeLetter
	ModTime time.Time
	ID      Identity
}

// Valid reports whether the metadata describes a real entry. The zero value
// is returned alongside hard inspection failures.
func (m EntryMeta) Valid() bool { return m.Type != 0 }

// Inspect stats path and classifies it. In follow mode the symlink target's
// metadata is reported; if the target cannot be resolved the link's own
// metadata is returned together with the resolution error, so the caller can
// emit a diagnostic and still evaluate the entry as a symlink.
func Inspect(path string, follow bool) (EntryMeta, error) {
	if !follow {
		return statMeta(path, false)
	}
	meta, err := statMeta(path, true)
	if err == nil {
		return meta, nil
	}
	lmeta, lerr := statMeta(path, false)
	if lerr != nil {
		return EntryMeta{}, err
	}
	return lmeta, err
}

func statMeta(path string, follow bool) (EntryMeta, error) {
	var st unix.Stat_t
	op := "lstat"
	var err error
	if follow {
		op = "stat"
		err = unix.Stat(path, &st)
	} else {
		err = unix.Lstat(path, &st)
	}
	if err != nil {
		return EntryMeta{}, &os.PathError{Op: op, Path: path, Err: err}
	}
	meta := EntryMeta{
		ModTime: time.Unix(st.Mtim.Unix()),
		ID:      Identity{Dev: uint64(st.Dev), Ino: uint64(st.Ino)},
	}
	switch st.Mode & unix.S_IFMT {
	case unix.S_IFBLK:
		meta.Type = TypeBlock
	case unix.S_IFCHR:
		meta.Type = TypeChar
	case unix.S_IFDIR:
		meta.Type = TypeDir
	case unix.S_IFIFO:
		meta.Type = TypeFIFO
	case unix.S_IFREG:
		meta.Type = TypeFile
	case unix.S_IFLNK:
		meta.Type = TypeSymlink
	case unix.S_IFSOCK:
		meta.Type = TypeSocket
	}
	return meta, nil
}
