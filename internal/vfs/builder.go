package vfs

// Builder constructs a Vfs tree bottom-up for tests and other fixture code.
type Builder struct {
	v      *Vfs
	nextID NodeID
}

// NewBuilder creates a Builder with an empty root directory named name.
func NewBuilder(rootName string) *Builder {
	b := &Builder{v: New()}
	b.v.Root = b.addDirectory(rootName)
	return b
}

func (b *Builder) allocate(n Node) NodeID {
	b.nextID++
	id := b.nextID
	b.v.nodes[id] = n
	return id
}

func (b *Builder) addDirectory(name string) NodeID {
	return b.allocate(Node{Kind: Directory, Name: name})
}

// AddFile adds a plain file under parent and returns its NodeID.
func (b *Builder) AddFile(parent NodeID, name string, content []byte) NodeID {
	id := b.allocate(Node{Kind: File, Name: name, Content: content})
	b.appendChild(parent, id)
	return id
}

// AddDirectory adds a plain directory under parent and returns its NodeID.
func (b *Builder) AddDirectory(parent NodeID, name string) NodeID {
	id := b.addDirectory(name)
	b.appendChild(parent, id)
	return id
}

// AddSpecialDirectory adds a tagged directory (e.g. src/) under parent.
func (b *Builder) AddSpecialDirectory(parent NodeID, name string, kind SpecialDirectoryKind) NodeID {
	id := b.allocate(Node{Kind: SpecialDirectory, Name: name, SpecialKind: kind})
	b.appendChild(parent, id)
	return id
}

// AddSpecialFile adds a tagged file under parent.
func (b *Builder) AddSpecialFile(parent NodeID, name string, content []byte) NodeID {
	id := b.allocate(Node{Kind: SpecialFile, Name: name, Content: content})
	b.appendChild(parent, id)
	return id
}

func (b *Builder) appendChild(parent, child NodeID) {
	n := b.v.nodes[parent]
	n.Children = append(n.Children, child)
	b.v.nodes[parent] = n
}

// Build returns the constructed Vfs.
func (b *Builder) Build() *Vfs {
	return b.v
}
