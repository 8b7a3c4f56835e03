package consts

const (
	MimePrefixImage = "image"
)

// 用户角色
const (
	RoleUser   = "USER"
	RoleAuthor = "AUTHOR"
	RoleAdmin  = "ADMIN"
)

const (
	DefaultCategoryLabel = "Uncategorized"
	DefaultCategoryValue = "uncategorized"
)

// 图片存储目录
const (
	FolderPost   = "blog/post"
	FolderAvatar = "blog/avatar"
	FolderSite   = "blog/site"
)
