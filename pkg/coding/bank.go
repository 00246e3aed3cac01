package coding

// problemBank is the curated set of problems the interviewer can draw
// from, spanning difficulties and topic tags.
var problemBank = map[string]Problem{
	"two-sum": {
		ID:         "two-sum",
		Title:      "Two Sum",
		Difficulty: "easy",
		Description: "Given an array of integers `nums` and an integer `target`, return the indices of the two numbers that add up to `target`.\n\n" +
			"You may assume that each input has exactly one solution, and you may not use the same element twice.\n\n" +
			"You can return the answer in any order.",
		Examples: []Example{
			{Input: "nums = [2, 7, 11, 15], target = 9", Output: "[0, 1]", Explanation: "Because nums[0] + nums[1] == 9, we return [0, 1]."},
			{Input: "nums = [3, 2, 4], target = 6", Output: "[1, 2]", Explanation: "Because nums[1] + nums[2] == 6, we return [1, 2]."},
		},
		Constraints: []string{
			"2 <= nums.length <= 10^4",
			"-10^9 <= nums[i] <= 10^9",
			"-10^9 <= target <= 10^9",
			"Only one valid answer exists.",
		},
		StarterCode: map[string]string{
			"python":     "def two_sum(nums: list[int], target: int) -> list[int]:\n    # Your code here\n    pass",
			"javascript": "function twoSum(nums, target) {\n    // Your code here\n}",
			"typescript": "function twoSum(nums: number[], target: number): number[] {\n    // Your code here\n}",
			"java":       "class Solution {\n    public int[] twoSum(int[] nums, int target) {\n        // Your code here\n        return new int[]{};\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    vector<int> twoSum(vector<int>& nums, int target) {\n        // Your code here\n        return {};\n    }\n};",
			"go":         "func twoSum(nums []int, target int) []int {\n    // Your code here\n    return nil\n}",
		},
		Tags: []string{"arrays", "hash-table"},
	},

	"valid-parentheses": {
		ID:         "valid-parentheses",
		Title:      "Valid Parentheses",
		Difficulty: "easy",
		Description: "Given a string `s` containing just the characters '(', ')', '{', '}', '[' and ']', determine if the input string is valid.\n\n" +
			"An input string is valid if:\n1. Open brackets must be closed by the same type of brackets.\n" +
			"2. Open brackets must be closed in the correct order.\n3. Every close bracket has a corresponding open bracket of the same type.",
		Examples: []Example{
			{Input: `s = "()"`, Output: "true", Explanation: "Simple valid parentheses."},
			{Input: `s = "()[]{}"`, Output: "true", Explanation: "Multiple types of brackets, all valid."},
			{Input: `s = "(]"`, Output: "false", Explanation: "Mismatched brackets."},
		},
		Constraints: []string{
			"1 <= s.length <= 10^4",
			"s consists of parentheses only '()[]{}'",
		},
		StarterCode: map[string]string{
			"python":     "def is_valid(s: str) -> bool:\n    # Your code here\n    pass",
			"javascript": "function isValid(s) {\n    // Your code here\n}",
			"typescript": "function isValid(s: string): boolean {\n    // Your code here\n}",
			"java":       "class Solution {\n    public boolean isValid(String s) {\n        // Your code here\n        return false;\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    bool isValid(string s) {\n        // Your code here\n        return false;\n    }\n};",
			"go":         "func isValid(s string) bool {\n    // Your code here\n    return false\n}",
		},
		Tags: []string{"strings", "stack"},
	},

	"reverse-linked-list": {
		ID:          "reverse-linked-list",
		Title:       "Reverse Linked List",
		Difficulty:  "easy",
		Description: "Given the head of a singly linked list, reverse the list, and return the reversed list.",
		Examples: []Example{
			{Input: "head = [1, 2, 3, 4, 5]", Output: "[5, 4, 3, 2, 1]", Explanation: "The linked list is reversed."},
			{Input: "head = [1, 2]", Output: "[2, 1]", Explanation: "Two nodes swapped."},
		},
		Constraints: []string{
			"The number of nodes in the list is in the range [0, 5000].",
			"-5000 <= Node.val <= 5000",
		},
		StarterCode: map[string]string{
			"python":     "def reverse_list(head: ListNode) -> ListNode:\n    # Your code here\n    pass",
			"javascript": "function reverseList(head) {\n    // Your code here\n}",
			"typescript": "function reverseList(head: ListNode | null): ListNode | null {\n    // Your code here\n}",
			"java":       "class Solution {\n    public ListNode reverseList(ListNode head) {\n        // Your code here\n        return null;\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    ListNode* reverseList(ListNode* head) {\n        // Your code here\n        return nullptr;\n    }\n};",
			"go":         "func reverseList(head *ListNode) *ListNode {\n    // Your code here\n    return nil\n}",
		},
		Tags: []string{"linked-list", "recursion"},
	},

	"max-subarray": {
		ID:         "max-subarray",
		Title:      "Maximum Subarray",
		Difficulty: "easy",
		Description: "Given an integer array `nums`, find the subarray with the largest sum, and return its sum.\n\n" +
			"A subarray is a contiguous non-empty sequence of elements within an array.",
		Examples: []Example{
			{Input: "nums = [-2, 1, -3, 4, -1, 2, 1, -5, 4]", Output: "6", Explanation: "The subarray [4, -1, 2, 1] has the largest sum 6."},
			{Input: "nums = [1]", Output: "1", Explanation: "The subarray [1] has the largest sum 1."},
		},
		Constraints: []string{
			"1 <= nums.length <= 10^5",
			"-10^4 <= nums[i] <= 10^4",
		},
		StarterCode: map[string]string{
			"python":     "def max_sub_array(nums: list[int]) -> int:\n    # Your code here\n    pass",
			"javascript": "function maxSubArray(nums) {\n    // Your code here\n}",
			"typescript": "function maxSubArray(nums: number[]): number {\n    // Your code here\n}",
			"java":       "class Solution {\n    public int maxSubArray(int[] nums) {\n        // Your code here\n        return 0;\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    int maxSubArray(vector<int>& nums) {\n        // Your code here\n        return 0;\n    }\n};",
			"go":         "func maxSubArray(nums []int) int {\n    // Your code here\n    return 0\n}",
		},
		Tags: []string{"arrays", "dynamic-programming"},
	},

	"merge-sorted-arrays": {
		ID:         "merge-sorted-arrays",
		Title:      "Merge Two Sorted Arrays",
		Difficulty: "easy",
		Description: "You are given two integer arrays `nums1` and `nums2`, sorted in non-decreasing order, and two integers `m` and `n`, representing the number of elements in `nums1` and `nums2` respectively.\n\n" +
			"Merge `nums2` into `nums1` as one sorted array, stored inside `nums1`. To accommodate this, `nums1` has a length of `m + n`, where the last `n` elements are set to 0 and should be ignored.",
		Examples: []Example{
			{Input: "nums1 = [1, 2, 3, 0, 0, 0], m = 3, nums2 = [2, 5, 6], n = 3", Output: "[1, 2, 2, 3, 5, 6]", Explanation: "The arrays being merged are [1,2,3] and [2,5,6]."},
		},
		Constraints: []string{
			"nums1.length == m + n",
			"nums2.length == n",
			"0 <= m, n <= 200",
			"1 <= m + n <= 200",
			"-10^9 <= nums1[i], nums2[j] <= 10^9",
		},
		StarterCode: map[string]string{
			"python":     "def merge(nums1: list[int], m: int, nums2: list[int], n: int) -> None:\n    # Modify nums1 in-place\n    pass",
			"javascript": "function merge(nums1, m, nums2, n) {\n    // Modify nums1 in-place\n}",
			"typescript": "function merge(nums1: number[], m: number, nums2: number[], n: number): void {\n    // Modify nums1 in-place\n}",
			"java":       "class Solution {\n    public void merge(int[] nums1, int m, int[] nums2, int n) {\n        // Modify nums1 in-place\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    void merge(vector<int>& nums1, int m, vector<int>& nums2, int n) {\n        // Modify nums1 in-place\n    }\n};",
			"go":         "func merge(nums1 []int, m int, nums2 []int, n int) {\n    // Modify nums1 in-place\n}",
		},
		Tags: []string{"arrays", "two-pointers", "sorting"},
	},

	"longest-substring": {
		ID:          "longest-substring",
		Title:       "Longest Substring Without Repeating Characters",
		Difficulty:  "medium",
		Description: "Given a string `s`, find the length of the longest substring without repeating characters.",
		Examples: []Example{
			{Input: `s = "abcabcbb"`, Output: "3", Explanation: `The answer is "abc", with a length of 3.`},
			{Input: `s = "bbbbb"`, Output: "1", Explanation: `The answer is "b", with a length of 1.`},
		},
		Constraints: []string{
			"0 <= s.length <= 5 * 10^4",
			"s consists of English letters, digits, symbols and spaces.",
		},
		StarterCode: map[string]string{
			"python":     "def length_of_longest_substring(s: str) -> int:\n    # Your code here\n    pass",
			"javascript": "function lengthOfLongestSubstring(s) {\n    // Your code here\n}",
			"typescript": "function lengthOfLongestSubstring(s: string): number {\n    // Your code here\n}",
			"java":       "class Solution {\n    public int lengthOfLongestSubstring(String s) {\n        // Your code here\n        return 0;\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    int lengthOfLongestSubstring(string s) {\n        // Your code here\n        return 0;\n    }\n};",
			"go":         "func lengthOfLongestSubstring(s string) int {\n    // Your code here\n    return 0\n}",
		},
		Tags: []string{"strings", "hash-table", "sliding-window"},
	},

	"coin-change": {
		ID:         "coin-change",
		Title:      "Coin Change",
		Difficulty: "medium",
		Description: "You are given an integer array `coins` representing coins of different denominations and an integer `amount`.\n\n" +
			"Return the fewest number of coins that you need to make up that amount. If that amount cannot be made up by any combination of the coins, return -1.",
		Examples: []Example{
			{Input: "coins = [1, 2, 5], amount = 11", Output: "3", Explanation: "11 = 5 + 5 + 1"},
			{Input: "coins = [2], amount = 3", Output: "-1", Explanation: "No combination of 2s makes 3."},
		},
		Constraints: []string{
			"1 <= coins.length <= 12",
			"1 <= coins[i] <= 2^31 - 1",
			"0 <= amount <= 10^4",
		},
		StarterCode: map[string]string{
			"python":     "def coin_change(coins: list[int], amount: int) -> int:\n    # Your code here\n    pass",
			"javascript": "function coinChange(coins, amount) {\n    // Your code here\n}",
			"typescript": "function coinChange(coins: number[], amount: number): number {\n    // Your code here\n}",
			"java":       "class Solution {\n    public int coinChange(int[] coins, int amount) {\n        // Your code here\n        return -1;\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    int coinChange(vector<int>& coins, int amount) {\n        // Your code here\n        return -1;\n    }\n};",
			"go":         "func coinChange(coins []int, amount int) int {\n    // Your code here\n    return -1\n}",
		},
		Tags: []string{"arrays", "dynamic-programming"},
	},

	"add-two-numbers": {
		ID:         "add-two-numbers",
		Title:      "Add Two Numbers",
		Difficulty: "medium",
		Description: "You are given two non-empty linked lists representing two non-negative integers. The digits are stored in reverse order, and each node contains a single digit. Add the two numbers and return the sum as a linked list.\n\n" +
			"You may assume the two numbers do not contain any leading zero, except the number 0 itself.",
		Examples: []Example{
			{Input: "l1 = [2, 4, 3], l2 = [5, 6, 4]", Output: "[7, 0, 8]", Explanation: "342 + 465 = 807, stored as [7, 0, 8] in reverse."},
			{Input: "l1 = [0], l2 = [0]", Output: "[0]", Explanation: "0 + 0 = 0"},
		},
		Constraints: []string{
			"The number of nodes in each linked list is in the range [1, 100].",
			"0 <= Node.val <= 9",
			"It is guaranteed that the list represents a number that does not have leading zeros.",
		},
		StarterCode: map[string]string{
			"python":     "def add_two_numbers(l1: ListNode, l2: ListNode) -> ListNode:\n    # Your code here\n    pass",
			"javascript": "function addTwoNumbers(l1, l2) {\n    // Your code here\n}",
			"typescript": "function addTwoNumbers(l1: ListNode | null, l2: ListNode | null): ListNode | null {\n    // Your code here\n}",
			"java":       "class Solution {\n    public ListNode addTwoNumbers(ListNode l1, ListNode l2) {\n        // Your code here\n        return null;\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    ListNode* addTwoNumbers(ListNode* l1, ListNode* l2) {\n        // Your code here\n        return nullptr;\n    }\n};",
			"go":         "func addTwoNumbers(l1 *ListNode, l2 *ListNode) *ListNode {\n    // Your code here\n    return nil\n}",
		},
		Tags: []string{"linked-list", "math"},
	},

	"three-sum": {
		ID:         "three-sum",
		Title:      "3Sum",
		Difficulty: "medium",
		Description: "Given an integer array `nums`, return all the triplets `[nums[i], nums[j], nums[k]]` such that `i != j`, `i != k`, and `j != k`, and `nums[i] + nums[j] + nums[k] == 0`.\n\n" +
			"Notice that the solution set must not contain duplicate triplets.",
		Examples: []Example{
			{Input: "nums = [-1, 0, 1, 2, -1, -4]", Output: "[[-1, -1, 2], [-1, 0, 1]]", Explanation: "The distinct triplets summing to zero."},
			{Input: "nums = [0, 1, 1]", Output: "[]", Explanation: "The only possible triplet does not sum up to 0."},
		},
		Constraints: []string{
			"3 <= nums.length <= 3000",
			"-10^5 <= nums[i] <= 10^5",
		},
		StarterCode: map[string]string{
			"python":     "def three_sum(nums: list[int]) -> list[list[int]]:\n    # Your code here\n    pass",
			"javascript": "function threeSum(nums) {\n    // Your code here\n}",
			"typescript": "function threeSum(nums: number[]): number[][] {\n    // Your code here\n}",
			"java":       "class Solution {\n    public List<List<Integer>> threeSum(int[] nums) {\n        // Your code here\n        return new ArrayList<>();\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    vector<vector<int>> threeSum(vector<int>& nums) {\n        // Your code here\n        return {};\n    }\n};",
			"go":         "func threeSum(nums []int) [][]int {\n    // Your code here\n    return nil\n}",
		},
		Tags: []string{"arrays", "two-pointers", "sorting"},
	},

	"binary-tree-level-order": {
		ID:          "binary-tree-level-order",
		Title:       "Binary Tree Level Order Traversal",
		Difficulty:  "medium",
		Description: "Given the root of a binary tree, return the level order traversal of its nodes' values (i.e., from left to right, level by level).",
		Examples: []Example{
			{Input: "root = [3, 9, 20, null, null, 15, 7]", Output: "[[3], [9, 20], [15, 7]]", Explanation: "First level [3], second level [9, 20], third level [15, 7]."},
			{Input: "root = [1]", Output: "[[1]]", Explanation: "Single node tree."},
		},
		Constraints: []string{
			"The number of nodes in the tree is in the range [0, 2000].",
			"-1000 <= Node.val <= 1000",
		},
		StarterCode: map[string]string{
			"python":     "def level_order(root: TreeNode) -> list[list[int]]:\n    # Your code here\n    pass",
			"javascript": "function levelOrder(root) {\n    // Your code here\n}",
			"typescript": "function levelOrder(root: TreeNode | null): number[][] {\n    // Your code here\n}",
			"java":       "class Solution {\n    public List<List<Integer>> levelOrder(TreeNode root) {\n        // Your code here\n        return new ArrayList<>();\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    vector<vector<int>> levelOrder(TreeNode* root) {\n        // Your code here\n        return {};\n    }\n};",
			"go":         "func levelOrder(root *TreeNode) [][]int {\n    // Your code here\n    return nil\n}",
		},
		Tags: []string{"trees", "bfs", "binary-tree"},
	},

	"lru-cache": {
		ID:         "lru-cache",
		Title:      "LRU Cache",
		Difficulty: "medium",
		Description: "Design a data structure that follows the constraints of a Least Recently Used (LRU) cache.\n\n" +
			"Implement get(key) and put(key, value), both in O(1) average time. When the cache reaches capacity, evict the least recently used key before inserting a new one.",
		Examples: []Example{
			{Input: `["LRUCache", "put", "put", "get", "put", "get"]` + "\n" + `[[2], [1, 1], [2, 2], [1], [3, 3], [2]]`, Output: "[null, null, null, 1, null, -1]", Explanation: "Key 2 was evicted when key 3 was inserted."},
		},
		Constraints: []string{
			"1 <= capacity <= 3000",
			"0 <= key <= 10^4",
			"At most 2 * 10^5 calls will be made to get and put.",
		},
		StarterCode: map[string]string{
			"python":     "class LRUCache:\n    def __init__(self, capacity: int):\n        # Your code here\n        pass\n\n    def get(self, key: int) -> int:\n        # Your code here\n        pass\n\n    def put(self, key: int, value: int) -> None:\n        # Your code here\n        pass",
			"javascript": "class LRUCache {\n    constructor(capacity) {\n        // Your code here\n    }\n\n    get(key) {\n        // Your code here\n    }\n\n    put(key, value) {\n        // Your code here\n    }\n}",
			"typescript": "class LRUCache {\n    constructor(capacity: number) {\n        // Your code here\n    }\n\n    get(key: number): number {\n        // Your code here\n        return -1;\n    }\n\n    put(key: number, value: number): void {\n        // Your code here\n    }\n}",
			"java":       "class LRUCache {\n    public LRUCache(int capacity) {\n        // Your code here\n    }\n\n    public int get(int key) {\n        // Your code here\n        return -1;\n    }\n\n    public void put(int key, int value) {\n        // Your code here\n    }\n}",
			"cpp":        "class LRUCache {\npublic:\n    LRUCache(int capacity) {\n        // Your code here\n    }\n\n    int get(int key) {\n        // Your code here\n        return -1;\n    }\n\n    void put(int key, int value) {\n        // Your code here\n    }\n};",
			"go":         "type LRUCache struct {\n    // Your fields here\n}\n\nfunc Constructor(capacity int) LRUCache {\n    // Your code here\n    return LRUCache{}\n}\n\nfunc (c *LRUCache) Get(key int) int {\n    // Your code here\n    return -1\n}\n\nfunc (c *LRUCache) Put(key int, value int) {\n    // Your code here\n}",
		},
		Tags: []string{"design", "hash-table", "linked-list"},
	},

	"number-of-islands": {
		ID:         "number-of-islands",
		Title:      "Number of Islands",
		Difficulty: "medium",
		Description: "Given an m x n 2D binary grid which represents a map of '1's (land) and '0's (water), return the number of islands.\n\n" +
			"An island is surrounded by water and is formed by connecting adjacent lands horizontally or vertically.",
		Examples: []Example{
			{Input: `grid = [["1","1","0"],["1","0","0"],["0","0","1"]]`, Output: "2", Explanation: "Two separate land masses."},
		},
		Constraints: []string{
			"m == grid.length",
			"n == grid[i].length",
			"1 <= m, n <= 300",
			"grid[i][j] is '0' or '1'.",
		},
		StarterCode: map[string]string{
			"python":     "def num_islands(grid: list[list[str]]) -> int:\n    # Your code here\n    pass",
			"javascript": "function numIslands(grid) {\n    // Your code here\n}",
			"typescript": "function numIslands(grid: string[][]): number {\n    // Your code here\n}",
			"java":       "class Solution {\n    public int numIslands(char[][] grid) {\n        // Your code here\n        return 0;\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    int numIslands(vector<vector<char>>& grid) {\n        // Your code here\n        return 0;\n    }\n};",
			"go":         "func numIslands(grid [][]byte) int {\n    // Your code here\n    return 0\n}",
		},
		Tags: []string{"matrix", "bfs", "dfs"},
	},

	"word-search": {
		ID:         "word-search",
		Title:      "Word Search",
		Difficulty: "medium",
		Description: "Given an m x n grid of characters `board` and a string `word`, return true if `word` exists in the grid.\n\n" +
			"The word can be constructed from letters of sequentially adjacent cells, where adjacent cells are horizontally or vertically neighboring. The same letter cell may not be used more than once.",
		Examples: []Example{
			{Input: `board = [["A","B","C","E"],["S","F","C","S"],["A","D","E","E"]], word = "ABCCED"`, Output: "true", Explanation: "The word can be found by following a path in the grid."},
			{Input: `board = [["A","B","C","E"],["S","F","C","S"],["A","D","E","E"]], word = "ABCB"`, Output: "false", Explanation: "The word cannot be formed without reusing cells."},
		},
		Constraints: []string{
			"m == board.length",
			"n == board[i].length",
			"1 <= m, n <= 6",
			"1 <= word.length <= 15",
			"board and word consists of only lowercase and uppercase English letters.",
		},
		StarterCode: map[string]string{
			"python":     "def exist(board: list[list[str]], word: str) -> bool:\n    # Your code here\n    pass",
			"javascript": "function exist(board, word) {\n    // Your code here\n}",
			"typescript": "function exist(board: string[][], word: string): boolean {\n    // Your code here\n}",
			"java":       "class Solution {\n    public boolean exist(char[][] board, String word) {\n        // Your code here\n        return false;\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    bool exist(vector<vector<char>>& board, string word) {\n        // Your code here\n        return false;\n    }\n};",
			"go":         "func exist(board [][]byte, word string) bool {\n    // Your code here\n    return false\n}",
		},
		Tags: []string{"backtracking", "dfs", "matrix"},
	},

	"product-except-self": {
		ID:         "product-except-self",
		Title:      "Product of Array Except Self",
		Difficulty: "medium",
		Description: "Given an integer array `nums`, return an array `answer` such that `answer[i]` is equal to the product of all the elements of `nums` except `nums[i]`.\n\n" +
			"You must write an algorithm that runs in O(n) time and without using the division operation.",
		Examples: []Example{
			{Input: "nums = [1, 2, 3, 4]", Output: "[24, 12, 8, 6]", Explanation: "For each index, multiply all other elements."},
			{Input: "nums = [-1, 1, 0, -3, 3]", Output: "[0, 0, 9, 0, 0]", Explanation: "Zero makes most products 0."},
		},
		Constraints: []string{
			"2 <= nums.length <= 10^5",
			"-30 <= nums[i] <= 30",
			"The product of any prefix or suffix of nums fits in a 32-bit integer.",
		},
		StarterCode: map[string]string{
			"python":     "def product_except_self(nums: list[int]) -> list[int]:\n    # Your code here\n    pass",
			"javascript": "function productExceptSelf(nums) {\n    // Your code here\n}",
			"typescript": "function productExceptSelf(nums: number[]): number[] {\n    // Your code here\n}",
			"java":       "class Solution {\n    public int[] productExceptSelf(int[] nums) {\n        // Your code here\n        return new int[]{};\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    vector<int> productExceptSelf(vector<int>& nums) {\n        // Your code here\n        return {};\n    }\n};",
			"go":         "func productExceptSelf(nums []int) []int {\n    // Your code here\n    return nil\n}",
		},
		Tags: []string{"arrays", "prefix-sum"},
	},

	"merge-k-sorted-lists": {
		ID:         "merge-k-sorted-lists",
		Title:      "Merge k Sorted Lists",
		Difficulty: "hard",
		Description: "You are given an array of k linked-lists `lists`, each linked-list is sorted in ascending order.\n\n" +
			"Merge all the linked-lists into one sorted linked-list and return it.",
		Examples: []Example{
			{Input: "lists = [[1, 4, 5], [1, 3, 4], [2, 6]]", Output: "[1, 1, 2, 3, 4, 4, 5, 6]", Explanation: "Merging 3 sorted lists into one."},
			{Input: "lists = []", Output: "[]", Explanation: "Empty input gives empty output."},
		},
		Constraints: []string{
			"k == lists.length",
			"0 <= k <= 10^4",
			"0 <= lists[i].length <= 500",
			"-10^4 <= lists[i][j] <= 10^4",
			"lists[i] is sorted in ascending order.",
			"The sum of lists[i].length will not exceed 10^4.",
		},
		StarterCode: map[string]string{
			"python":     "def merge_k_lists(lists: list[ListNode]) -> ListNode:\n    # Your code here\n    pass",
			"javascript": "function mergeKLists(lists) {\n    // Your code here\n}",
			"typescript": "function mergeKLists(lists: Array<ListNode | null>): ListNode | null {\n    // Your code here\n}",
			"java":       "class Solution {\n    public ListNode mergeKLists(ListNode[] lists) {\n        // Your code here\n        return null;\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    ListNode* mergeKLists(vector<ListNode*>& lists) {\n        // Your code here\n        return nullptr;\n    }\n};",
			"go":         "func mergeKLists(lists []*ListNode) *ListNode {\n    // Your code here\n    return nil\n}",
		},
		Tags: []string{"linked-list", "divide-and-conquer", "heap"},
	},

	"trapping-rain-water": {
		ID:          "trapping-rain-water",
		Title:       "Trapping Rain Water",
		Difficulty:  "hard",
		Description: "Given n non-negative integers representing an elevation map where the width of each bar is 1, compute how much water it can trap after raining.",
		Examples: []Example{
			{Input: "height = [0,1,0,2,1,0,1,3,2,1,2,1]", Output: "6", Explanation: "6 units of rain water are trapped."},
			{Input: "height = [4,2,0,3,2,5]", Output: "9"},
		},
		Constraints: []string{
			"n == height.length",
			"1 <= n <= 2 * 10^4",
			"0 <= height[i] <= 10^5",
		},
		StarterCode: map[string]string{
			"python":     "def trap(height: list[int]) -> int:\n    # Your code here\n    pass",
			"javascript": "function trap(height) {\n    // Your code here\n}",
			"typescript": "function trap(height: number[]): number {\n    // Your code here\n}",
			"java":       "class Solution {\n    public int trap(int[] height) {\n        // Your code here\n        return 0;\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    int trap(vector<int>& height) {\n        // Your code here\n        return 0;\n    }\n};",
			"go":         "func trap(height []int) int {\n    // Your code here\n    return 0\n}",
		},
		Tags: []string{"arrays", "two-pointers", "stack"},
	},

	"word-ladder": {
		ID:         "word-ladder",
		Title:      "Word Ladder",
		Difficulty: "hard",
		Description: "A transformation sequence from word `beginWord` to word `endWord` using a dictionary `wordList` is a sequence of words beginWord -> s1 -> s2 -> ... -> sk such that:\n" +
			"- Every adjacent pair of words differs by a single letter.\n" +
			"- Every si for 1 <= i <= k is in wordList. Note that beginWord does not need to be in wordList.\n" +
			"- sk == endWord\n\n" +
			"Given two words, `beginWord` and `endWord`, and a dictionary `wordList`, return the number of words in the shortest transformation sequence from beginWord to endWord, or 0 if no such sequence exists.",
		Examples: []Example{
			{Input: `beginWord = "hit", endWord = "cog", wordList = ["hot","dot","dog","lot","log","cog"]`, Output: "5", Explanation: `One shortest transformation is "hit" -> "hot" -> "dot" -> "dog" -> "cog", which is 5 words long.`},
			{Input: `beginWord = "hit", endWord = "cog", wordList = ["hot","dot","dog","lot","log"]`, Output: "0", Explanation: `The endWord "cog" is not in wordList, so there is no valid transformation.`},
		},
		Constraints: []string{
			"1 <= beginWord.length <= 10",
			"endWord.length == beginWord.length",
			"1 <= wordList.length <= 5000",
			"wordList[i].length == beginWord.length",
			"beginWord, endWord, and wordList[i] consist of lowercase English letters.",
			"beginWord != endWord",
			"All the words in wordList are unique.",
		},
		StarterCode: map[string]string{
			"python":     "def ladder_length(begin_word: str, end_word: str, word_list: list[str]) -> int:\n    # Your code here\n    pass",
			"javascript": "function ladderLength(beginWord, endWord, wordList) {\n    // Your code here\n}",
			"typescript": "function ladderLength(beginWord: string, endWord: string, wordList: string[]): number {\n    // Your code here\n}",
			"java":       "class Solution {\n    public int ladderLength(String beginWord, String endWord, List<String> wordList) {\n        // Your code here\n        return 0;\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    int ladderLength(string beginWord, string endWord, vector<string>& wordList) {\n        // Your code here\n        return 0;\n    }\n};",
			"go":         "func ladderLength(beginWord string, endWord string, wordList []string) int {\n    // Your code here\n    return 0\n}",
		},
		Tags: []string{"bfs", "strings", "hash-table"},
	},

	"serialize-binary-tree": {
		ID:         "serialize-binary-tree",
		Title:      "Serialize and Deserialize Binary Tree",
		Difficulty: "hard",
		Description: "Design an algorithm to serialize and deserialize a binary tree. There is no restriction on how your serialization/deserialization algorithm should work. " +
			"You just need to ensure that a binary tree can be serialized to a string and this string can be deserialized to the original tree structure.",
		Examples: []Example{
			{Input: "root = [1, 2, 3, null, null, 4, 5]", Output: "[1, 2, 3, null, null, 4, 5]", Explanation: "Tree is serialized and deserialized back to the same structure."},
		},
		Constraints: []string{
			"The number of nodes in the tree is in the range [0, 10^4].",
			"-1000 <= Node.val <= 1000",
		},
		StarterCode: map[string]string{
			"python":     "class Codec:\n    def serialize(self, root: TreeNode) -> str:\n        # Your code here\n        pass\n\n    def deserialize(self, data: str) -> TreeNode:\n        # Your code here\n        pass",
			"javascript": "class Codec {\n    serialize(root) {\n        // Your code here\n    }\n\n    deserialize(data) {\n        // Your code here\n    }\n}",
			"typescript": "class Codec {\n    serialize(root: TreeNode | null): string {\n        // Your code here\n    }\n\n    deserialize(data: string): TreeNode | null {\n        // Your code here\n    }\n}",
			"java":       "public class Codec {\n    public String serialize(TreeNode root) {\n        // Your code here\n        return \"\";\n    }\n\n    public TreeNode deserialize(String data) {\n        // Your code here\n        return null;\n    }\n}",
			"cpp":        "class Codec {\npublic:\n    string serialize(TreeNode* root) {\n        // Your code here\n        return \"\";\n    }\n\n    TreeNode* deserialize(string data) {\n        // Your code here\n        return nullptr;\n    }\n};",
			"go":         "type Codec struct {\n}\n\nfunc Constructor() Codec {\n    return Codec{}\n}\n\nfunc (c *Codec) serialize(root *TreeNode) string {\n    // Your code here\n    return \"\"\n}\n\nfunc (c *Codec) deserialize(data string) *TreeNode {\n    // Your code here\n    return nil\n}",
		},
		Tags: []string{"trees", "dfs", "bfs", "design"},
	},

	"median-sorted-arrays": {
		ID:         "median-sorted-arrays",
		Title:      "Median of Two Sorted Arrays",
		Difficulty: "hard",
		Description: "Given two sorted arrays `nums1` and `nums2` of size m and n respectively, return the median of the two sorted arrays.\n\n" +
			"The overall run time complexity should be O(log(m+n)).",
		Examples: []Example{
			{Input: "nums1 = [1, 3], nums2 = [2]", Output: "2.0", Explanation: "Merged array = [1, 2, 3] and the median is 2."},
			{Input: "nums1 = [1, 2], nums2 = [3, 4]", Output: "2.5", Explanation: "Merged array = [1, 2, 3, 4] and the median is (2 + 3) / 2 = 2.5."},
		},
		Constraints: []string{
			"nums1.length == m, nums2.length == n",
			"0 <= m, n <= 1000",
			"-10^6 <= nums1[i], nums2[i] <= 10^6",
		},
		StarterCode: map[string]string{
			"python":     "def find_median_sorted_arrays(nums1: list[int], nums2: list[int]) -> float:\n    # Your code here\n    pass",
			"javascript": "function findMedianSortedArrays(nums1, nums2) {\n    // Your code here\n}",
			"typescript": "function findMedianSortedArrays(nums1: number[], nums2: number[]): number {\n    // Your code here\n}",
			"java":       "class Solution {\n    public double findMedianSortedArrays(int[] nums1, int[] nums2) {\n        // Your code here\n        return 0.0;\n    }\n}",
			"cpp":        "class Solution {\npublic:\n    double findMedianSortedArrays(vector<int>& nums1, vector<int>& nums2) {\n        // Your code here\n        return 0.0;\n    }\n};",
			"go":         "func findMedianSortedArrays(nums1 []int, nums2 []int) float64 {\n    // Your code here\n    return 0\n}",
		},
		Tags: []string{"arrays", "binary-search", "divide-and-conquer"},
	},
}

// GetProblem returns the problem with the given id.
func GetProblem(id string) (Problem, bool) {
	p, ok := problemBank[id]
	return p, ok
}

// AllProblems returns every problem in the bank.
func AllProblems() []Problem {
	problems := make([]Problem, 0, len(problemBank))
	for _, p := range problemBank {
		problems = append(problems, p)
	}
	return problems
}

// ProblemsByTags returns problems matching at least one of the given tags.
func ProblemsByTags(tags []string) []Problem {
	wanted := make(map[string]bool, len(tags))
	for _, tag := range tags {
		wanted[tag] = true
	}

	var matches []Problem
	for _, p := range problemBank {
		for _, tag := range p.Tags {
			if wanted[tag] {
				matches = append(matches, p)
				break
			}
		}
	}
	return matches
}

// ProblemsByDifficulty returns problems of the given difficulty.
func ProblemsByDifficulty(difficulty string) []Problem {
	var matches []Problem
	for _, p := range problemBank {
		if p.Difficulty == difficulty {
			matches = append(matches, p)
		}
	}
	return matches
}
