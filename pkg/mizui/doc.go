// Package mizui 提供基于文件的轻量字符串模板渲染。
//
// 模板中的 {{ expr }} 占位符按点分路径从数据对象取值，
// {{ component(name) }} 标记会被递归替换为 basePath 下 name.mizui 的内容。
// 不是通用表达式语言：没有条件、循环与过滤器。
//
// # 渲染流水线
//
//  1. Fetch - [Store] 按模板路径读取原始文本（缓存优先）
//  2. Inline - [Inliner] 递归展开组件，深度上限 [MaxDepth]
//  3. Validate - [Check] 逐行比较开闭定界符数量
//  4. Interpolate - [Interpolate] 将占位符改写为 ${path} 形式的模板字面量
//  5. Compile - [Compile] 解析为 [Template]，按改写后的文本缓存
//  6. Invoke - [Template.Execute] 以数据对象求值
//
// 任一阶段失败时 [Renderer.Render] 记录错误日志并返回空字符串；
// 执行阶段的失败额外写入崩溃记录（见 [CrashRecorder]）。
//
// # 快速开始
//
//	r := mizui.New(
//	    mizui.WithBasePath("components"),
//	    mizui.WithSyntax(mizui.Syntax{Open: "{{", Close: "}}"}),
//	)
//	out := r.Render("pages/hello.mizui", map[string]any{"name": "Ada"})
//
// # 缓存
//
// 缓存由 [Renderer] 持有，生命周期与 Renderer 一致。默认 [NewMapCache] 永不淘汰，
// 文件变更后仍返回旧内容；需要有界缓存时使用 [NewLRUCache]。
package mizui
