package scram

import "testing"

func TestCacheEntryCopyIsIndependent(t *testing.T) {
	entry := &CacheEntry{
		Algorithm:      SHA256,
		HashedPassword: []byte("secret"),
		DecodedSalt:    []byte{1, 2, 3},
		Iterations:     4096,
		SaltedPassword: []byte{4, 5, 6},
		ClientKey:      []byte{7, 8, 9},
		ServerKey:      []byte{10, 11, 12},
	}
	dup := entry.Copy()
	dup.DecodedSalt[0] = 0xff
	if entry.DecodedSalt[0] == 0xff {
		t.Fatal("Copy should not alias the original's byte slices")
	}
	if !bytesEqual(dup.HashedPassword, entry.HashedPassword) {
		t.Fatal("Copy should preserve the hashed password")
	}
	dup.HashedPassword[0] = 0xff
	if entry.HashedPassword[0] == 0xff {
		t.Fatal("Copy should not alias the hashed password bytes")
	}
}

func TestCacheEntryNilCopyAndDestroy(t *testing.T) {
	var e *CacheEntry
	if e.Copy() != nil {
		t.Fatal("Copy of nil should be nil")
	}
	e.Destroy() // must not panic
}

func TestCacheEntryHasPresecretsRequiresAlgorithmMatch(t *testing.T) {
	entry := &CacheEntry{
		Algorithm:      SHA1,
		HashedPassword: []byte("hp"),
		DecodedSalt:    []byte{1, 2, 3},
		Iterations:     4096,
	}
	if entry.HasPresecrets(SHA256, []byte("hp"), []byte{1, 2, 3}, 4096) {
		t.Fatal("HasPresecrets must not match across algorithms")
	}
	if !entry.HasPresecrets(SHA1, []byte("hp"), []byte{1, 2, 3}, 4096) {
		t.Fatal("HasPresecrets should match identical presecrets under the same algorithm")
	}
}

func TestCacheEntryDestroyZeroesHashedPassword(t *testing.T) {
	entry := &CacheEntry{HashedPassword: []byte("secret")}
	original := entry.HashedPassword
	entry.Destroy()
	if entry.HashedPassword != nil {
		t.Fatal("Destroy should clear the hashed password field")
	}
	for _, b := range original {
		if b != 0 {
			t.Fatal("Destroy should zero the hashed password bytes in place")
		}
	}
}
