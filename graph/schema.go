package graph

// Schema is the wire contract. The resolver methods on Resolver back
// every query and mutation declared here.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Post {
		id: ID!
		title: String!
		content: String!
		imageUrl: String!
		creator: User!
		createdAt: String!
		updatedAt: String!
	}

	type User {
		id: ID!
		name: String!
		email: String!
		password: String
		status: String!
		posts: [Post!]!
	}

	input UserInputData {
		email: String!
		name: String!
		password: String!
	}

	input PostInputData {
		title: String!
		content: String!
		imageUrl: String
	}

	type AuthData {
		token: String!
		userId: String!
	}

	type PostData {
		posts: [Post!]!
		total: Int!
	}

	type Query {
		logIn(email: String!, password: String!): AuthData!
		getPosts(page: Int): PostData!
		getSinglePost(id: ID!): Post!
		getStatus: User!
	}

	type Mutation {
		createUser(userInput: UserInputData!): User!
		createPost(postInput: PostInputData!): Post!
		updatePost(id: ID!, postInput: PostInputData!): Post!
		deletePost(id: ID!): Boolean!
		updateStatus(status: String!): User!
	}
`
