package blog

import (
	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-stream-utils/arr"
	"github.com/hasbyte1/go-stream-utils/stream"
)

// Reporter runs the catalog reports. The zero value is ready to use and
// logs nothing.
type Reporter struct {
	Log zerolog.Logger
}

// NewReporter returns a Reporter whose pipelines log to log.
func NewReporter(log zerolog.Logger) *Reporter {
	return &Reporter{Log: log}
}

func (r *Reporter) from(posts []Post) *stream.Stream[Post] {
	return stream.FromSlice(posts).WithLogger(r.Log)
}

// PostsPerType groups posts by type in order of first appearance.
func (r *Reporter) PostsPerType(posts []Post) (*stream.Groups[PostType, Post], error) {
	return stream.GroupBy(r.from(posts), Post.Type)
}

// PostsByTitle indexes posts by title. Two posts sharing a title yield a
// [*stream.DuplicateKeyError].
func (r *Reporter) PostsByTitle(posts []Post) (map[string]Post, error) {
	return stream.ToAssociation(r.from(posts), Post.Title)
}

// TotalReadTime sums the reading time of posts in minutes.
func (r *Reporter) TotalReadTime(posts []Post) (int, error) {
	return stream.SumBy(r.from(posts), Post.ReadTime)
}

// LongReads returns the posts taking at least minMinutes to read, longest
// first. Posts with equal reading time keep their catalog order.
func (r *Reporter) LongReads(posts []Post, minMinutes int) ([]Post, error) {
	return r.from(posts).
		Filter(func(p Post) bool { return p.ReadTime() >= minMinutes }).
		Sorted(stream.Comparing(Post.ReadTime).Reversed()).
		Collect()
}

// AuthorReadTime is an author's total reading time across their posts.
type AuthorReadTime struct {
	Author  string `json:"author"`
	Minutes int    `json:"minutes"`
}

// AuthorsByReadTime totals reading time per author, highest first. Ties are
// broken by author name.
func (r *Reporter) AuthorsByReadTime(posts []Post) ([]AuthorReadTime, error) {
	totals, err := stream.ToMapMerge(r.from(posts), Post.Author, Post.ReadTime,
		func(existing, incoming int) int { return existing + incoming })
	if err != nil {
		return nil, err
	}

	authors := make([]AuthorReadTime, 0, len(totals))
	for author, minutes := range totals {
		authors = append(authors, AuthorReadTime{Author: author, Minutes: minutes})
	}
	return arr.Sort(authors, stream.Comparing(func(a AuthorReadTime) int { return a.Minutes }).
		Reversed().
		ThenComparing(stream.Comparing(func(a AuthorReadTime) string { return a.Author }))), nil
}

// Summary aggregates the catalog reports.
type Summary struct {
	Posts         int              `json:"posts"`
	TotalReadTime int              `json:"total_read_time"`
	PerType       map[string]int   `json:"per_type"`
	Authors       []AuthorReadTime `json:"authors"`
	LongReads     []string         `json:"long_reads"`
	Checksum      string           `json:"checksum"`
}

// Summarize runs every report over posts. Posts of at least longRead minutes
// are listed by title. Duplicate titles are rejected.
func (r *Reporter) Summarize(posts []Post, longRead int) (Summary, error) {
	if _, err := r.PostsByTitle(posts); err != nil {
		return Summary{}, err
	}

	groups, err := r.PostsPerType(posts)
	if err != nil {
		return Summary{}, err
	}
	perType := make(map[string]int, len(PostTypes()))
	for _, t := range PostTypes() {
		items, _ := groups.Get(t)
		perType[t.String()] = len(items)
	}

	total, err := r.TotalReadTime(posts)
	if err != nil {
		return Summary{}, err
	}
	authors, err := r.AuthorsByReadTime(posts)
	if err != nil {
		return Summary{}, err
	}
	long, err := r.LongReads(posts, longRead)
	if err != nil {
		return Summary{}, err
	}
	sum, err := stream.Checksum(r.from(posts), func(p Post) []byte { return []byte(p.String()) })
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Posts:         len(posts),
		TotalReadTime: total,
		PerType:       perType,
		Authors:       authors,
		LongReads:     arr.Map(long, Post.Title),
		Checksum:      sum,
	}, nil
}
