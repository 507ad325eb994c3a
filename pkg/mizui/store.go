package mizui

// Store 按模板路径读取原始文本，命中缓存时不再访问文件系统。
type Store struct {
	fs    FileSystem
	cache Cache
}

// NewStore 创建 Store。
func NewStore(fsys FileSystem, cache Cache) *Store {
	return &Store{fs: fsys, cache: cache}
}

// Get 返回 identifier 对应的原始文本。
//
// 缓存条目一旦写入即视为有效，即使文件随后被修改或删除。
func (s *Store) Get(identifier string) (string, error) {
	if v, ok := s.cache.Get(templateKeyPrefix + identifier); ok {
		if text, ok := v.(string); ok {
			return text, nil
		}
	}

	if !s.fs.Exists(identifier) {
		return "", &Error{Kind: KindTemplateNotFound, Identifier: identifier}
	}

	text, err := s.fs.ReadText(identifier)
	if err != nil {
		return "", &Error{Kind: KindTemplateNotFound, Identifier: identifier, Err: err}
	}
	s.cache.Set(templateKeyPrefix+identifier, text)

	return text, nil
}
