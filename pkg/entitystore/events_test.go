package entitystore

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yong/moviehub/pkg/client"
)

func replay[T any](events ...Event[T]) State[T] {
	s := Initial[T]()
	for _, e := range events {
		s = Reduce(s, e)
	}
	return s
}

func movie(id int64, name string) client.Movie {
	return client.Movie{ID: lo.ToPtr(id), Name: lo.ToPtr(name)}
}

func news(id int64, headerline string) client.News {
	return client.News{ID: lo.ToPtr(id), Headerline: lo.ToPtr(headerline)}
}

func twitter(id int64, content string) client.Twitter {
	return client.Twitter{ID: lo.ToPtr(id), Content: lo.ToPtr(content)}
}

// forEachKind runs a reducer test once per entity kind.
func forEachKind(t *testing.T,
	onMovie func(*testing.T, func(int64, string) client.Movie),
	onNews func(*testing.T, func(int64, string) client.News),
	onTwitter func(*testing.T, func(int64, string) client.Twitter),
) {
	t.Helper()

	t.Run("movie", func(t *testing.T) { onMovie(t, movie) })
	t.Run("news", func(t *testing.T) { onNews(t, news) })
	t.Run("twitter", func(t *testing.T) { onTwitter(t, twitter) })
}

func TestFetchListRequestedThenSucceeded(t *testing.T) {
	forEachKind(t,
		testFetchListRequestedThenSucceeded[client.Movie],
		testFetchListRequestedThenSucceeded[client.News],
		testFetchListRequestedThenSucceeded[client.Twitter],
	)
}

func testFetchListRequestedThenSucceeded[T any](t *testing.T, record func(int64, string) T) {
	reqID := uuid.New()
	params := client.ListParams{Page: 0, Size: 20, Sort: []string{"id,asc"}}
	page := client.Page[T]{
		Items:      []T{record(1, "A")},
		TotalItems: 1,
		Links:      client.Links{"first": 0, "last": 0},
	}

	s := replay[T](
		Requested[T]{Op: OpFetchList, RequestID: reqID},
	)
	assert.True(t, s.Loading)
	assert.False(t, s.Updating)

	s = Reduce[T](s, ListFetched[T]{RequestID: reqID, Params: params, Page: page})

	assert.False(t, s.Loading)
	assert.Equal(t, []T{record(1, "A")}, s.Entities)
	assert.Equal(t, 1, s.TotalItems)
	assert.Equal(t, page.Links, s.Links)
	assert.NoError(t, s.Err)
}

func TestFetchOneFailedKeepsEntity(t *testing.T) {
	forEachKind(t,
		testFetchOneFailedKeepsEntity[client.Movie],
		testFetchOneFailedKeepsEntity[client.News],
		testFetchOneFailedKeepsEntity[client.Twitter],
	)
}

func testFetchOneFailedKeepsEntity[T any](t *testing.T, record func(int64, string) T) {
	failure := errors.New("404 Not Found")
	prior := record(7, "kept")

	s := replay[T](
		EntityFetched[T]{Entity: prior},
		Requested[T]{Op: OpFetchOne},
		Failed[T]{Op: OpFetchOne, Err: failure},
	)

	assert.False(t, s.Loading)
	assert.Equal(t, prior, s.Entity)
	assert.Equal(t, failure, s.Err)
}

func TestDeleteSucceededClearsEntity(t *testing.T) {
	forEachKind(t,
		testDeleteSucceededClearsEntity[client.Movie],
		testDeleteSucceededClearsEntity[client.News],
		testDeleteSucceededClearsEntity[client.Twitter],
	)
}

func testDeleteSucceededClearsEntity[T any](t *testing.T, record func(int64, string) T) {
	s := replay[T](
		EntityFetched[T]{Entity: record(3, "gone")},
		Requested[T]{Op: OpDelete},
		Deleted[T]{ID: 3},
	)

	var zero T
	assert.Equal(t, zero, s.Entity)
	assert.True(t, s.UpdateSuccess)
	assert.False(t, s.Updating)
}

func TestResetRestoresDefault(t *testing.T) {
	forEachKind(t,
		testResetRestoresDefault[client.Movie],
		testResetRestoresDefault[client.News],
		testResetRestoresDefault[client.Twitter],
	)
}

func testResetRestoresDefault[T any](t *testing.T, record func(int64, string) T) {
	s := replay[T](
		Requested[T]{Op: OpFetchList},
		ListFetched[T]{Page: client.Page[T]{Items: []T{record(1, "A")}, TotalItems: 1}},
		Saved[T]{Op: OpUpdate, Entity: record(5, "C")},
		Failed[T]{Op: OpFetchOne, Err: errors.New("boom")},
		Reset[T]{},
	)

	assert.Equal(t, Initial[T](), s)
	assert.Equal(t, Initial[T](), Reduce[T](s, Reset[T]{}))
}

func TestFetchListMergePolicy(t *testing.T) {
	multi := client.Links{"first": 0, "next": 2, "last": 3}
	first := client.Page[client.Movie]{Items: []client.Movie{movie(1, "A")}, TotalItems: 2, Links: multi}
	second := client.Page[client.Movie]{Items: []client.Movie{movie(2, "B")}, TotalItems: 2, Links: multi}

	tests := []struct {
		name   string
		params client.ListParams
		want   []client.Movie
	}{
		{
			name:   "next page appends",
			params: client.ListParams{Page: 1, Size: 1, Sort: []string{"id,asc"}},
			want:   []client.Movie{movie(1, "A"), movie(2, "B")},
		},
		{
			name:   "first page replaces",
			params: client.ListParams{Page: 0, Size: 1, Sort: []string{"id,asc"}},
			want:   []client.Movie{movie(2, "B")},
		},
		{
			name:   "unpaged refresh replaces",
			params: client.ListParams{},
			want:   []client.Movie{movie(2, "B")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := replay[client.Movie](
				ListFetched[client.Movie]{Params: client.ListParams{Page: 0, Size: 1, Sort: []string{"id,asc"}}, Page: first},
				ListFetched[client.Movie]{Params: tt.params, Page: second},
			)
			assert.Equal(t, tt.want, s.Entities)
		})
	}
}

func TestCreateSucceededReplacesEntity(t *testing.T) {
	created := movie(10, "new")

	s := replay[client.Movie](
		EntityFetched[client.Movie]{Entity: movie(3, "old")},
		Requested[client.Movie]{Op: OpCreate},
		Saved[client.Movie]{Op: OpCreate, Entity: created},
	)

	assert.True(t, s.UpdateSuccess)
	assert.False(t, s.Updating)
	assert.Equal(t, created, s.Entity)
}

func TestCreateFailedConflict(t *testing.T) {
	prior := movie(3, "old")

	s := replay[client.Movie](
		EntityFetched[client.Movie]{Entity: prior},
		Requested[client.Movie]{Op: OpCreate},
	)
	require.True(t, s.Updating)

	s = Reduce[client.Movie](s, Failed[client.Movie]{Op: OpCreate, Err: errors.New("409 Conflict")})

	assert.False(t, s.Updating)
	assert.False(t, s.UpdateSuccess)
	assert.EqualError(t, s.Err, "409 Conflict")
	assert.Equal(t, prior, s.Entity)
}

func TestUpdateSuccessIsOneShot(t *testing.T) {
	s := replay[client.Movie](
		Saved[client.Movie]{Op: OpUpdate, Entity: movie(5, "C")},
	)
	require.True(t, s.UpdateSuccess)

	s = Reduce[client.Movie](s, Requested[client.Movie]{Op: OpFetchList})
	assert.False(t, s.UpdateSuccess)
}

func TestRequestedClearsError(t *testing.T) {
	s := replay[client.Movie](
		Failed[client.Movie]{Op: OpFetchOne, Err: errors.New("boom")},
		Requested[client.Movie]{Op: OpUpdate},
	)

	assert.NoError(t, s.Err)
	assert.True(t, s.Updating)
}

func TestFetchAndMutateTrackedIndependently(t *testing.T) {
	s := replay[client.Movie](
		Requested[client.Movie]{Op: OpFetchList},
		Requested[client.Movie]{Op: OpDelete},
	)
	require.True(t, s.Loading)
	require.True(t, s.Updating)

	s = Reduce[client.Movie](s, Failed[client.Movie]{Op: OpDelete, Err: errors.New("500 Internal Server Error")})

	assert.True(t, s.Loading)
	assert.False(t, s.Updating)
}

func TestSetAttachment(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4e, 0x47}
	set := AttachmentSet[client.Movie]{Field: client.FieldImage, Data: data, ContentType: "image/png"}

	s := replay[client.Movie](
		EntityFetched[client.Movie]{Entity: movie(1, "A")},
		Requested[client.Movie]{Op: OpUpdate},
		set,
	)
	again := Reduce[client.Movie](s, set)

	assert.Equal(t, data, s.Entity.Image)
	assert.Equal(t, lo.ToPtr("image/png"), s.Entity.ImageContentType)
	assert.Equal(t, s, again)
	assert.True(t, s.Updating)
	assert.False(t, s.Loading)
	assert.NoError(t, s.Err)
}

func TestSetAttachmentUnknownField(t *testing.T) {
	s := replay[client.Movie](
		EntityFetched[client.Movie]{Entity: movie(1, "A")},
		AttachmentSet[client.Movie]{Field: "poster", Data: []byte("x"), ContentType: "image/png"},
	)

	assert.Equal(t, movie(1, "A"), s.Entity)
}

func TestSetAttachmentWithoutAttachments(t *testing.T) {
	tw := client.Twitter{ID: lo.ToPtr[int64](1), Content: lo.ToPtr("hi")}

	s := replay[client.Twitter](
		EntityFetched[client.Twitter]{Entity: tw},
		AttachmentSet[client.Twitter]{Field: client.FieldImage, Data: []byte("x"), ContentType: "image/png"},
	)

	assert.Equal(t, tw, s.Entity)
}

func TestReduceDoesNotModifyInput(t *testing.T) {
	params := client.ListParams{Page: 1, Size: 1, Sort: []string{"id,asc"}}
	links := client.Links{"first": 0, "last": 1}

	base := replay[client.Movie](
		ListFetched[client.Movie]{Params: client.ListParams{Sort: []string{"id,asc"}, Size: 1}, Page: client.Page[client.Movie]{
			Items: []client.Movie{movie(1, "A")}, Links: links,
		}},
	)
	_ = Reduce[client.Movie](base, ListFetched[client.Movie]{Params: params, Page: client.Page[client.Movie]{
		Items: []client.Movie{movie(2, "B")}, Links: links,
	}})

	assert.Equal(t, []client.Movie{movie(1, "A")}, base.Entities)
}

func TestCompleted(t *testing.T) {
	id := uuid.New()
	failure := errors.New("503 Service Unavailable")

	assert.Equal(t, Failed[client.Movie]{Op: OpUpdate, RequestID: id, Err: failure},
		Completed(OpUpdate, id, 0, client.Movie{}, failure))
	assert.Equal(t, EntityFetched[client.Movie]{RequestID: id, Entity: movie(1, "A")},
		Completed(OpFetchOne, id, 1, movie(1, "A"), nil))
	assert.Equal(t, Deleted[client.Movie]{RequestID: id, ID: 4},
		Completed(OpDelete, id, 4, client.Movie{}, nil))
	assert.Equal(t, Saved[client.Movie]{Op: OpPartialUpdate, RequestID: id, Entity: movie(1, "A")},
		Completed(OpPartialUpdate, id, 0, movie(1, "A"), nil))
	assert.Equal(t, Failed[client.Movie]{Op: OpFetchList, RequestID: id, Err: failure},
		CompletedList(id, client.ListParams{}, client.Page[client.Movie]{}, failure))
}
