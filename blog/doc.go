// Package blog models the blog post catalog used to exercise stream
// pipelines and provides the reports built on top of it.
//
// Posts are immutable and validated on construction:
//
//	p, err := blog.NewPost("Programming guide", "Author 1", blog.Guide, 20)
//
// A catalog file holds a "posts" list in any format viper reads:
//
//	posts:
//	  - title: News item 1
//	    author: Author 1
//	    type: NEWS
//	    read_time: 15
package blog
