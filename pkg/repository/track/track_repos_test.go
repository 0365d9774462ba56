//nolint:dupl,funlen,errcheck //ok for this test code
package track

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gotest.tools/v3/assert"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
	"github.com/mpapenbr/f1gp-track-go/testsupport/basedata"
	"github.com/mpapenbr/f1gp-track-go/testsupport/testdb"
)

func createSampleEntry(t *testing.T, db *pgxpool.Pool) *model.DbTrack {
	t.Helper()
	track := basedata.SampleDbTrack()
	err := pgx.BeginFunc(context.Background(), db, func(tx pgx.Tx) error {
		return Create(context.Background(), tx, track)
	})
	assert.NilError(t, err)
	return track
}

func TestCreate(t *testing.T) {
	pool := testdb.InitTestDb(t)
	sample := createSampleEntry(t, pool)
	assert.Assert(t, sample.ID > 0)

	other := basedata.SampleDbTrack()
	other.Name = "F1CT02"
	other.Checksum = 0x01020304
	tests := []struct {
		name    string
		track   *model.DbTrack
		wantErr bool
	}{
		{name: "new entry", track: other},
		{name: "duplicate checksum", track: basedata.SampleDbTrack(), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Create(context.Background(), pool, tt.track)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadByID(t *testing.T) {
	pool := testdb.InitTestDb(t)
	sample := createSampleEntry(t, pool)

	got, err := LoadByID(context.Background(), pool, sample.ID)
	assert.NilError(t, err)
	assert.DeepEqual(t, got, sample)

	_, err = LoadByID(context.Background(), pool, sample.ID+1)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestLoadByChecksum(t *testing.T) {
	pool := testdb.InitTestDb(t)
	sample := createSampleEntry(t, pool)

	got, err := LoadByChecksum(context.Background(), pool, 0xDDCCBBAA)
	assert.NilError(t, err)
	assert.Equal(t, got.ID, sample.ID)
	assert.Equal(t, got.Checksum, uint32(0xDDCCBBAA))
	assert.Equal(t, got.Data.SectionCount, 15)

	_, err = LoadByChecksum(context.Background(), pool, 1)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUpdate(t *testing.T) {
	pool := testdb.InitTestDb(t)
	sample := createSampleEntry(t, pool)

	sample.Name = "renamed"
	sample.Data.SectionCount = 16
	n, err := Update(context.Background(), pool, sample)
	assert.NilError(t, err)
	assert.Equal(t, n, 1)

	got, err := LoadByID(context.Background(), pool, sample.ID)
	assert.NilError(t, err)
	assert.Equal(t, got.Name, "renamed")
	assert.Equal(t, got.Data.SectionCount, 16)
}

func TestEnsureTrack(t *testing.T) {
	pool := testdb.InitTestDb(t)

	first := basedata.SampleDbTrack()
	created, err := EnsureTrack(context.Background(), pool, first)
	assert.NilError(t, err)
	assert.Assert(t, created)

	second := basedata.SampleDbTrack()
	second.Data.Length = 4000
	created, err = EnsureTrack(context.Background(), pool, second)
	assert.NilError(t, err)
	assert.Assert(t, !created)
	assert.Equal(t, second.ID, first.ID)

	got, err := LoadByID(context.Background(), pool, first.ID)
	assert.NilError(t, err)
	assert.Equal(t, got.Data.Length, 4000.0)
}

func TestDeleteByID(t *testing.T) {
	db := testdb.InitTestDb(t)
	sample := createSampleEntry(t, db)

	tests := []struct {
		name string
		id   int
		want int
	}{
		{name: "delete_existing", id: sample.ID, want: 1},
		{name: "delete_non_existing", id: -1, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeleteByID(context.Background(), db, tt.id)
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}
